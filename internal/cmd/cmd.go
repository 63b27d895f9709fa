package cmd

import (
	"github.com/clambin/go-common/charmer"
	"github.com/clambin/suez-monitor/internal/cmd/monitor"
	"github.com/clambin/suez-monitor/internal/cmd/read"
	"github.com/clambin/suez-monitor/internal/configuration"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"log/slog"
	"os"
	"strings"
)

var (
	configFilename string
	RootCmd        = cobra.Command{
		Use:   "suez-monitor",
		Short: "Reports the water consumption of a Suez water meter",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			charmer.SetJSONLogger(cmd, viper.GetBool("debug"))
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	RootCmd.PersistentFlags().StringVar(&configFilename, "config", "", "Configuration file")
	_ = charmer.SetPersistentFlags(&RootCmd, viper.GetViper(), args)

	RootCmd.AddCommand(&monitor.Cmd, &read.Cmd)
}

var args = charmer.Arguments{
	"debug":                {Default: false, Help: "Log debug messages"},
	"suez.username":        {Default: "", Help: "Suez portal username"},
	"suez.password":        {Default: "", Help: "Suez portal password"},
	"suez.counter_id":      {Default: "", Help: "Water meter ID (auto-detected if empty)"},
	"portal.command":       {Default: "toutsurmoneau", Help: "Portal client executable"},
	"poller.interval":      {Default: configuration.DefaultInterval, Help: "Poller interval"},
	"exporter.addr":        {Default: ":9090", Help: "Address of Prometheus exporter"},
	"health.addr":          {Default: ":8080", Help: "Address of /health endpoint"},
	"mqtt.broker":          {Default: "", Help: "MQTT broker URL for Home Assistant (disabled if empty)"},
	"mqtt.username":        {Default: "", Help: "MQTT username"},
	"mqtt.password":        {Default: "", Help: "MQTT password"},
	"mqtt.clientID":        {Default: "suez-monitor", Help: "MQTT client ID"},
	"mqtt.discoveryPrefix": {Default: "homeassistant", Help: "Home Assistant discovery prefix"},
	"slack.token":          {Default: "", Help: "Slack token (disabled if empty)"},
	"slack.channel":        {Default: "", Help: "Slack channel for availability notifications"},
}

func initConfig() {
	if configFilename != "" {
		viper.SetConfigFile(configFilename)
	} else {
		viper.AddConfigPath("/etc/suez-monitor/")
		viper.AddConfigPath("$HOME/.suez-monitor")
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("SUEZ_MONITOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || configFilename != "" {
			slog.Error("failed to read config file", "err", err)
			os.Exit(1)
		}
	}
}

