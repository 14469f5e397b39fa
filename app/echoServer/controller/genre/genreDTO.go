package genre

type GenreForm struct {
	Name string `form:"name" validate:"required" msg:"Genre name required"`
}
