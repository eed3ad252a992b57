package config

import (
	"fmt"

	"github.com/spf13/viper"
)

var SmartContractConfig *viper.Viper

func init() {
	SmartContractConfig = viper.New()
	SetupDefaultSmartContractConfig()
}

//SetupDefaultConfig - setup the default config options that can be overridden via the config file
func SetupDefaultConfig() {
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.console", false)
}

func SetupDefaultSmartContractConfig() {
	SmartContractConfig.SetDefault("smart_contracts.rewardpoolsc.owner_id", "")
	SmartContractConfig.SetDefault("smart_contracts.rewardpoolsc.min_stake", 0.0)
	SmartContractConfig.SetDefault("smart_contracts.rewardpoolsc.max_pools_per_request", 100)
}

/*SetupSmartContractConfig - read the smart contract configuration file */
func SetupSmartContractConfig() {
	SmartContractConfig.SetConfigName("sc")
	SmartContractConfig.AddConfigPath("./config")
	if err := SmartContractConfig.ReadInConfig(); err != nil {
		panic(fmt.Errorf("fatal error smart contract config file: %s", err))
	}
}
