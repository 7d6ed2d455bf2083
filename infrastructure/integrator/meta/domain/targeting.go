package metadomain

// IDName é o par id/nome usado em interesses, comportamentos e públicos
type IDName struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RawTargeting é o spec de targeting bruto de um conjunto de anúncios
type RawTargeting struct {
	AgeMin               int                `json:"age_min,omitempty"`
	AgeMax               int                `json:"age_max,omitempty"`
	Genders              []int              `json:"genders,omitempty"`
	GeoLocations         *RawGeoLocations   `json:"geo_locations,omitempty"`
	ExcludedGeoLocations *RawGeoLocations   `json:"excluded_geo_locations,omitempty"`
	Interests            []IDName           `json:"interests,omitempty"`
	Behaviors            []IDName           `json:"behaviors,omitempty"`
	CustomAudiences      []IDName           `json:"custom_audiences,omitempty"`
	FlexibleSpec         []RawFlexibleGroup `json:"flexible_spec,omitempty"`
	Exclusions           *RawFlexibleGroup  `json:"exclusions,omitempty"`
	PublisherPlatforms   []string           `json:"publisher_platforms,omitempty"`
	FacebookPositions    []string           `json:"facebook_positions,omitempty"`
	InstagramPositions   []string           `json:"instagram_positions,omitempty"`
	DevicePlatforms      []string           `json:"device_platforms,omitempty"`

	// Variantes históricas do sinal de expansão de público (Advantage+).
	// A plataforma renomeou este campo entre versões da API; todas as
	// variantes conhecidas precisam ser verificadas, em ordem.
	TargetingAutomation        *RawTargetingAutomation `json:"targeting_automation,omitempty"`
	TargetingOptimization      string                  `json:"targeting_optimization,omitempty"`
	DetailedTargetingExpansion *RawExpansionFlag       `json:"targeting_expansion,omitempty"`
}

// RawTargetingAutomation é a variante atual do sinal Advantage+
type RawTargetingAutomation struct {
	AdvantageAudience int `json:"advantage_audience"`
}

// RawExpansionFlag é a variante legada do sinal de expansão
type RawExpansionFlag struct {
	Expansion int `json:"expansion"`
}

// RawFlexibleGroup é um grupo AND do flexible_spec; os itens dentro do grupo
// são combinados com OR pela plataforma
type RawFlexibleGroup struct {
	Interests        []IDName `json:"interests,omitempty"`
	Behaviors        []IDName `json:"behaviors,omitempty"`
	Demographics     []IDName `json:"demographics,omitempty"`
	LifeEvents       []IDName `json:"life_events,omitempty"`
	CustomAudiences  []IDName `json:"custom_audiences,omitempty"`
	EducationSchools []IDName `json:"education_schools,omitempty"`
	WorkEmployers    []IDName `json:"work_employers,omitempty"`
}

// RawGeoLocations reúne todas as sub-coleções de localização do targeting
type RawGeoLocations struct {
	Countries         []string               `json:"countries,omitempty"`
	Regions           []RawRegion            `json:"regions,omitempty"`
	Cities            []RawCity              `json:"cities,omitempty"`
	Zips              []RawZip               `json:"zips,omitempty"`
	CustomLocations   []RawCustomLocation    `json:"custom_locations,omitempty"`
	Places            []RawPlace             `json:"places,omitempty"`
	GeoMarkets        []RawGeoMarket         `json:"geo_markets,omitempty"`
	ElectoralDistrict []RawElectoralDistrict `json:"electoral_districts,omitempty"`
	LocationTypes     []string               `json:"location_types,omitempty"`
}

type RawRegion struct {
	Key     string `json:"key"`
	Name    string `json:"name,omitempty"`
	Country string `json:"country,omitempty"`
}

type RawCity struct {
	Key          string  `json:"key"`
	Name         string  `json:"name,omitempty"`
	Region       string  `json:"region,omitempty"`
	Country      string  `json:"country,omitempty"`
	Radius       float64 `json:"radius,omitempty"`
	DistanceUnit string  `json:"distance_unit,omitempty"`
}

type RawZip struct {
	Key         string `json:"key"`
	Name        string `json:"name,omitempty"`
	PrimaryCity string `json:"primary_city,omitempty"`
	Region      string `json:"region,omitempty"`
	Country     string `json:"country,omitempty"`
}

type RawCustomLocation struct {
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	Address      string  `json:"address_string,omitempty"`
	Radius       float64 `json:"radius,omitempty"`
	DistanceUnit string  `json:"distance_unit,omitempty"`
}

type RawPlace struct {
	Key          string  `json:"key"`
	Name         string  `json:"name,omitempty"`
	Latitude     float64 `json:"latitude,omitempty"`
	Longitude    float64 `json:"longitude,omitempty"`
	Radius       float64 `json:"radius,omitempty"`
	DistanceUnit string  `json:"distance_unit,omitempty"`
}

type RawGeoMarket struct {
	Key  string `json:"key"`
	Name string `json:"name,omitempty"`
}

type RawElectoralDistrict struct {
	Key  string `json:"key"`
	Name string `json:"name,omitempty"`
}

// RawZipLocation é o resultado do lookup em lote de códigos postais
type RawZipLocation struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	PrimaryCity string `json:"primary_city,omitempty"`
	Region      string `json:"region,omitempty"`
	RegionID    int    `json:"region_id,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
}
