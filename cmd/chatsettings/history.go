package main

import (
	"fmt"
	"strconv"

	"chatgogo/chatsettings/internal/config"
	"chatgogo/chatsettings/internal/storage"

	"github.com/spf13/cobra"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newHistoryCommand(opts *rootOptions) *cobra.Command {
	var (
		configPath string
		limit      int
	)
	cmd := &cobra.Command{
		Use:   "history <peer_id>",
		Short: "List stored snapshots of a chat, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			peerID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid peer_id %q", args[0])
			}
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			db, err := gorm.Open(postgres.Open(cfg.Postgres.DSN), &gorm.Config{
				Logger: logger.Default.LogMode(logger.Silent),
			})
			if err != nil {
				return fmt.Errorf("connect postgres: %w", err)
			}

			// No redis needed for reading snapshots.
			s := storage.NewStorageService(db, nil, 0)
			snaps, err := s.ListSnapshots(cmd.Context(), peerID, limit)
			if err != nil {
				return err
			}
			out, err := render(snaps, opts.output)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&configPath, "config", config.DefaultConfigPath, "path to config.toml")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of snapshots")
	return cmd
}
