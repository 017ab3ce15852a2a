package entity

type HallType string

const (
	HallTypeRegular HallType = "regular"
	HallTypePremium HallType = "premium"
	HallTypeVIP     HallType = "vip"
)

type ScreenType string

const (
	ScreenType2D   ScreenType = "2D"
	ScreenType3D   ScreenType = "3D"
	ScreenType4DX  ScreenType = "4DX"
	ScreenTypeIMAX ScreenType = "IMAX"
)

type Hall struct {
	Base
	Name       string     `db:"name"`
	Type       HallType   `db:"type"`
	ScreenType ScreenType `db:"screen_type"`
	Seats      int        `db:"seats"`
}
