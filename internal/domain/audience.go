package domain

// Tipos de localização suportados pelo targeting da plataforma
const (
	LocationTypeCountry           = "country"
	LocationTypeRegion            = "region"
	LocationTypeCity              = "city"
	LocationTypeCustomLocation    = "custom_location"
	LocationTypePlace             = "place"
	LocationTypeZip               = "zip"
	LocationTypeGeoMarket         = "geo_market"
	LocationTypeElectoralDistrict = "electoral_district"
)

// LocationEntry é uma união etiquetada sobre os tipos de localização do
// targeting; Display carrega a string pronta para exibição
type LocationEntry struct {
	Type       string  `json:"type"`
	Key        string  `json:"key,omitempty"`
	Name       string  `json:"name,omitempty"`
	Region     string  `json:"region,omitempty"`
	Country    string  `json:"country,omitempty"`
	Address    string  `json:"address,omitempty"`
	Radius     float64 `json:"radius,omitempty"`
	RadiusUnit string  `json:"radius_unit,omitempty"`
	Latitude   float64 `json:"latitude,omitempty"`
	Longitude  float64 `json:"longitude,omitempty"`
	Display    string  `json:"display"`
}

// ZipCode é um código postal do targeting, com os nomes resolvidos via
// lookup na plataforma quando não vieram no spec original
type ZipCode struct {
	Key         string `json:"key"`
	Code        string `json:"code"`
	City        string `json:"city,omitempty"`
	Region      string `json:"region,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}

// Audience é o público resolvido de um conjunto de anúncios
type Audience struct {
	Formatted               string           `json:"formatted"`
	Locations               []*LocationEntry `json:"locations"`
	ExcludedLocations       []*LocationEntry `json:"excluded_locations,omitempty"`
	ZipCodes                []*ZipCode       `json:"zip_codes,omitempty"`
	AgeMin                  int              `json:"age_min,omitempty"`
	AgeMax                  int              `json:"age_max,omitempty"`
	Gender                  string           `json:"gender,omitempty"`
	Interests               []string         `json:"interests,omitempty"`
	Behaviors               []string         `json:"behaviors,omitempty"`
	Demographics            []string         `json:"demographics,omitempty"`
	CustomAudiences         []string         `json:"custom_audiences,omitempty"`
	ExcludedInterests       []string         `json:"excluded_interests,omitempty"`
	ExcludedCustomAudiences []string         `json:"excluded_custom_audiences,omitempty"`
	AdvantageAudience       bool             `json:"advantage_audience"`
}

// Placement descreve onde os anúncios do conjunto são veiculados
type Placement struct {
	Type      string   `json:"type"` // manual | automatic
	Platforms []string `json:"platforms,omitempty"`
	Positions []string `json:"positions,omitempty"`
	Devices   []string `json:"devices,omitempty"`
}

// Budget é o orçamento normalizado para a unidade monetária principal
type Budget struct {
	Type   string  `json:"type"` // daily | lifetime
	Amount float64 `json:"amount"`
}

// Schedule são as datas de veiculação no fuso horário do negócio
type Schedule struct {
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}
