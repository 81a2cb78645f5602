package main

import (
	"io"

	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/config"
	"github.com/jackyeh168/bar_loyalty/src/internal/infrastructure/logging"
	"github.com/spf13/cobra"
)

// cliState 子指令共用的設定與日誌資源
type cliState struct {
	configPath string
	cfg        *config.Config
	logCloser  io.Closer
}

func newRootCmd() *cobra.Command {
	state := &cliState{}

	rootCmd := &cobra.Command{
		Use:           "loyalty",
		Short:         "Bar loyalty service - points, rewards and POS receipt intake",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&state.configPath, "config", "c", "", "config file (default ./config.yaml)")

	rootCmd.AddCommand(serveCmd(state))
	rootCmd.AddCommand(migrateCmd(state))
	rootCmd.AddCommand(rewardsCmd(state))
	rootCmd.AddCommand(ledgerCmd(state))
	rootCmd.AddCommand(configCmd())

	return rootCmd
}

// load 讀取設定並初始化日誌；供需要資料庫的子指令使用
func (s *cliState) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(s.configPath)
	if err != nil {
		return err
	}
	closer, err := logging.Setup(cfg.Logging)
	if err != nil {
		return err
	}
	s.cfg = cfg
	s.logCloser = closer
	return nil
}

func (s *cliState) close(*cobra.Command, []string) {
	if s.logCloser != nil {
		_ = s.logCloser.Close()
	}
}
