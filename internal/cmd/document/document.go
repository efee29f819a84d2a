// Package document provides document-related commands.
package document

import (
	"github.com/spf13/cobra"
)

// NewCmdDocument creates the document command.
func NewCmdDocument() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "document",
		Aliases: []string{"doc", "docs"},
		Short:   "Browse and read documents",
		Long:    `Commands for listing, viewing, downloading, and exporting documents from the document store.`,
	}

	cmd.AddCommand(NewCmdList())
	cmd.AddCommand(NewCmdView())
	cmd.AddCommand(NewCmdDownload())
	cmd.AddCommand(NewCmdExport())

	return cmd
}
