package cmd

import (
	"cosmossdk.io/log"
	"github.com/spf13/cobra"

	bookio "github.com/openalpha/orderbook/io"
)

func newLoadCmd(logger log.Logger) *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "load",
		Short: "Load a book from a file and print it back out",
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := loadBook(path, logger)
			if err != nil {
				return err
			}

			logger.Info("loaded book", "asks", book.Asks().Len(), "bids", book.Bids().Len())
			cmd.Print(bookio.FormatBook(book))
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "file", "f", "", "path to a book file (side; key; volume; price per line)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
