package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

type SimulationConfig struct {
	Quantum      int
	BatchCount   int
	ProcessCount int
	Seed         int64
}

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	Simulation            SimulationConfig
}

var once sync.Once
var config *SchedulerConfig

// GetSchedulerConfig reads ./config.yaml once. A missing file leaves the defaults in place.
func GetSchedulerConfig() *SchedulerConfig {
	once.Do(func() {
		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				log.Fatalln(err)
			}
			log.Println("config file not found, using defaults")
		}

		var err error
		config, err = NewSchedulerConfig(v)
		if err != nil {
			log.Fatalln(err)
		}
	})

	return config
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", -1)
	v.SetDefault("simulation.quantum", -1)
	v.SetDefault("simulation.batch_count", 10)
	v.SetDefault("simulation.process_count", 5)
	v.SetDefault("simulation.seed", 0)
}

// NewSchedulerConfig builds a config from v, with SCHEDULER_* environment variables
// taking precedence over file values.
func NewSchedulerConfig(v *viper.Viper) (*SchedulerConfig, error) {
	setDefaults(v)
	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	c := &SchedulerConfig{}
	c.Port = v.GetInt("port")
	c.RoundRobinTimeQuantum = v.GetInt("scheduler.round_robin.time_quantum")
	c.Simulation = SimulationConfig{
		Quantum:      v.GetInt("simulation.quantum"),
		BatchCount:   v.GetInt("simulation.batch_count"),
		ProcessCount: v.GetInt("simulation.process_count"),
		Seed:         v.GetInt64("simulation.seed"),
	}

	if c.Port < 1 || c.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", c.Port)
	}
	return c, nil
}
