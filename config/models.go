package config

type Config struct {
	Port        int    `mapstructure:"port" validate:"gte=1,lte=65535"`
	Env         string `mapstructure:"env" validate:"required"`
	ServiceName string `mapstructure:"service_name" validate:"required"`
}
