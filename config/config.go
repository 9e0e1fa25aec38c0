package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Benchmark Benchmark `mapstructure:"benchmark" validate:"required"`
	Workload  Workload  `mapstructure:"workload" validate:"required"`
	Logging   Logging   `mapstructure:"logging" validate:"required"`
	API       API       `mapstructure:"api" validate:"required"`
	Report    Report    `mapstructure:"report"`
}

type Benchmark struct {
	Workers    *int `mapstructure:"workers" validate:"required,min=1"`
	Iterations *int `mapstructure:"iterations" validate:"required,min=1"`
	Warmup     *int `mapstructure:"warmup" validate:"required,min=0"`
	Trials     *int `mapstructure:"trials" validate:"required,min=1"`
}

type Workload struct {
	// Latency distribution parameters, in microseconds. The generator
	// truncates draws to [minMicros, maxMicros].
	MeanMicros   *float64 `mapstructure:"meanMicros" validate:"required"`
	StdDevMicros *float64 `mapstructure:"stddevMicros" validate:"required"`
	MinMicros    *float64 `mapstructure:"minMicros" validate:"required"`
	MaxMicros    *float64 `mapstructure:"maxMicros" validate:"required"`
}

type Logging struct {
	Driver   *string  `mapstructure:"driver" validate:"oneof=noop stdout influxdb"`
	InfluxDB InfluxDB `mapstructure:"influxdb" validate:"required_if=Driver influxdb"`
}

type InfluxDB struct {
	Host   *string `mapstructure:"host"`
	Token  *string `mapstructure:"token"`
	Org    *string `mapstructure:"org"`
	Bucket *string `mapstructure:"bucket"`
}

type API struct {
	Enabled *bool `mapstructure:"enabled" validate:"required"`
	Port    *int  `mapstructure:"port" validate:"required"`
}

type Report struct {
	// HistogramPNG is an optional path; when set, the final histogram is
	// also rendered as a PNG bar chart.
	HistogramPNG *string `mapstructure:"histogramPNG"`
}

func setDefaults() {
	viper.SetDefault("Benchmark.Workers", 4)
	viper.SetDefault("Benchmark.Iterations", 10000)
	viper.SetDefault("Benchmark.Warmup", 100)
	viper.SetDefault("Benchmark.Trials", 1)

	viper.SetDefault("Workload.MeanMicros", 20)
	viper.SetDefault("Workload.StddevMicros", 10)
	viper.SetDefault("Workload.MinMicros", 0)
	viper.SetDefault("Workload.MaxMicros", 1000)

	viper.SetDefault("Logging.Driver", "noop")

	viper.SetDefault("API.Enabled", false)
	viper.SetDefault("API.Port", 8079)
}

func ReadConfig() *Config {
	viper.AutomaticEnv()
	setDefaults()

	viper.SetConfigType("yaml")
	viper.SetConfigName("config")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Printf("config.yaml not found; continuing with defaults")
		} else {
			log.Fatalf("error when reading config file at ./config.yaml: err = %s", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("error occured while reading configuration file: err = %s", err)
	}
	validate := validator.New()
	err := validate.Struct(&config)
	if err != nil {
		if _, ok := err.(*validator.InvalidValidationError); ok {
			log.Printf("unable to validate config: err = %s", err)
		}

		log.Printf("encountered validation errors:\n")

		for _, err := range err.(validator.ValidationErrors) {
			fmt.Printf("\t%s\n", err.Error())
		}

		fmt.Println("Check your configuration file and try again.")
		os.Exit(1)
	}

	if err := validateInfluxDBFields(&config); err != nil {
		log.Printf("encountered validation errors:\n\t%s\n", err)
		fmt.Println("Check your configuration file and try again.")
		os.Exit(1)
	}

	return &config
}

// validateInfluxDBFields guards what the required_if tag cannot: the tag
// only rejects an all-zero influxdb block, so a partially filled block
// would otherwise pass validation and leave the remaining pointers nil.
// The driver field names cannot be cross-referenced from inside the
// nested struct, hence the explicit check.
func validateInfluxDBFields(config *Config) error {
	if config.Logging.Driver == nil || *config.Logging.Driver != "influxdb" {
		return nil
	}
	influxDB := config.Logging.InfluxDB
	if influxDB.Host == nil || influxDB.Token == nil || influxDB.Org == nil || influxDB.Bucket == nil {
		return errors.New("logging.influxdb requires host, token, org and bucket when logging.driver is influxdb")
	}
	return nil
}
