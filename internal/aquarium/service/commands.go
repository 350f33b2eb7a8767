package service

type CreateAquariumCommand struct {
	Name        string
	Length      float64
	Width       float64
	Height      float64
	Substrate   string
	WaterType   string
	Temperature *float64
	State       string
	Color       string
	Description string
}

type CreateInhabitantCommand struct {
	Kind                string
	Species             string
	Name                string
	Color               string
	Count               int
	Schooling           bool
	WaterType           string
	AggressiveEater     bool
	RequiresSpecialFood bool
	SnailEater          bool
	Description         string
}

type CreateAccessoryCommand struct {
	Kind         string
	Model        string
	SerialNumber string
	Color        string
	Description  string

	External       bool
	CapacityLiters int

	LED         bool
	TurnOnTime  string
	TurnOffTime string

	MinTemperature     *float64
	MaxTemperature     *float64
	CurrentTemperature *float64
}

type CreateOrnamentCommand struct {
	Name              string
	Description       string
	Color             string
	Material          string
	AirPumpCompatible bool
}
