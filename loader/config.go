package loader

// Config contains where the trip files are and how to read them
// + DataDir: directory with the city files
// + CityFiles: file name of each city, relative to DataDir
// + TimestampLayouts: accepted layouts for the Start Time column, tried in order
type Config struct {
	DataDir          string            `yaml:"data_dir"`
	CityFiles        map[string]string `yaml:"city_files"`
	TimestampLayouts []string          `yaml:"timestamp_layouts"`
}

// DefaultTimestampLayouts layouts used when the config does not set any
func DefaultTimestampLayouts() []string {
	return []string{
		"2006-01-02 15:04:05",
		"2006-01-02 15:04:05.999999999",
		"2006-01-02T15:04:05",
		"2006-01-02 15:04",
	}
}
