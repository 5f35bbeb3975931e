package weatherstack

// APIResponse is the full payload returned by the weatherstack current
// weather endpoint. Only Current is projected into the API response;
// the rest is provider metadata kept for completeness of decoding.
type APIResponse struct {
	Request  Request  `json:"request"`
	Location Location `json:"location"`
	Current  Current  `json:"current"`
}

// Request echoes the query back from the provider.
type Request struct {
	Type     string `json:"type"`
	Query    string `json:"query"`
	Language string `json:"language"`
	Unit     string `json:"unit"`
}

// Location describes the geocoded location the provider resolved.
type Location struct {
	Name           string `json:"name"`
	Country        string `json:"country"`
	Region         string `json:"region"`
	Lat            string `json:"lat"`
	Lon            string `json:"lon"`
	TimezoneID     string `json:"timezone_id"`
	Localtime      string `json:"localtime"`
	LocaltimeEpoch int64  `json:"localtime_epoch"`
	UTCOffset      string `json:"utc_offset"`
}

// Current holds the observed conditions at the location.
type Current struct {
	ObservationTime     string     `json:"observation_time"`
	Temperature         float64    `json:"temperature"`
	WeatherCode         int        `json:"weather_code"`
	WeatherIcons        []string   `json:"weather_icons"`
	WeatherDescriptions []string   `json:"weather_descriptions"`
	Astro               Astro      `json:"astro"`
	AirQuality          AirQuality `json:"air_quality"`
	WindSpeed           float64    `json:"wind_speed"`
	WindDegree          int        `json:"wind_degree"`
	WindDir             string     `json:"wind_dir"`
	Pressure            float64    `json:"pressure"`
	Precip              float64    `json:"precip"`
	Humidity            int        `json:"humidity"`
	CloudCover          int        `json:"cloudcover"`
	FeelsLike           float64    `json:"feelslike"`
	UVIndex             float64    `json:"uv_index"`
	Visibility          float64    `json:"visibility"`
	IsDay               string     `json:"is_day"`
}

// Astro holds sun and moon data for the location's local day.
type Astro struct {
	Sunrise          string `json:"sunrise"`
	Sunset           string `json:"sunset"`
	Moonrise         string `json:"moonrise"`
	Moonset          string `json:"moonset"`
	MoonPhase        string `json:"moon_phase"`
	MoonIllumination int    `json:"moon_illumination"`
}

// AirQuality holds pollutant measurements.
type AirQuality struct {
	CO         string `json:"co"`
	NO2        string `json:"no2"`
	O3         string `json:"o3"`
	SO2        string `json:"so2"`
	PM25       string `json:"pm2_5"`
	PM10       string `json:"pm10"`
	USEPAIndex string `json:"us-epa-index"`
	GBDefra    string `json:"gb-defra-index"`
}
