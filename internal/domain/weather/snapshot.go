package weather

// CurrentSnapshot is the reduced projection of a provider's current weather
// payload exposed by the API. It is created fresh per request and never stored.
type CurrentSnapshot struct {
	Temperature         float64  `json:"temperature"`
	WeatherCode         int      `json:"weather_code"`
	WeatherIcons        []string `json:"weather_icons"`
	WeatherDescriptions []string `json:"weather_descriptions"`
	WindSpeed           float64  `json:"wind_speed"`
	WindDegree          int      `json:"wind_degree"`
	WindDir             string   `json:"wind_dir"`
	Pressure            float64  `json:"pressure"`
	Precip              float64  `json:"precip"`
	Humidity            int      `json:"humidity"`
	CloudCover          int      `json:"cloudcover"`
	FeelsLike           float64  `json:"feelslike"`
	UVIndex             float64  `json:"uv_index"`
	Visibility          float64  `json:"visibility"`
	IsDay               string   `json:"is_day"`
}
