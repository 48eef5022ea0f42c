// Command atomicweight is the offline calculator CLI, for scripting and use
// on machines without the dashboard service.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "atomicweight",
	Short: "Atomic weight calculator for element isotope tables",
	Long: "Computes the natural atomic weight of an element from its stable isotopes," +
		" or an average atomic mass from isotopic masses and mass-based composition weights.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .atomicweight.yaml)")
	rootCmd.PersistentFlags().String("csv", "isotopes.csv", "path to the isotopes CSV table")
	viper.BindPFlag("csv", rootCmd.PersistentFlags().Lookup("csv"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".atomicweight")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ATOMICWEIGHT")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}
