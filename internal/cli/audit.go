package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/occkernel/internal/audit"
)

var (
	tailEntries int
	exportFrom  uint64
	exportTo    uint64
	exportOut   string
)

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.AddCommand(auditVerifyCmd)
	auditCmd.AddCommand(auditTailCmd)
	auditCmd.AddCommand(auditExportCmd)
	auditCmd.AddCommand(auditCheckExportCmd)
	auditTailCmd.Flags().IntVarP(&tailEntries, "entries", "n", 10, "Number of recent entries to show")
	auditExportCmd.Flags().Uint64Var(&exportFrom, "from", 1, "First sequence to export")
	auditExportCmd.Flags().Uint64Var(&exportTo, "to", 0, "Last sequence to export (0 = chain tail)")
	auditExportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "Output file (default stdout)")
}

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit chain operations",
	Long:  "Commands for verifying, inspecting, and exporting the hash-chained\naudit log.",
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify <db-path>",
	Short: "Verify hash chain integrity of an audit database",
	Long:  "Walks the chain from genesis and validates sequence continuity,\nprev_hash linkage, and every recomputed entry hash.\nExits 0 if valid, 1 at the first divergence.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuditVerify,
}

var auditTailCmd = &cobra.Command{
	Use:   "tail <db-path>",
	Short: "Show recent audit entries",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuditTail,
}

var auditExportCmd = &cobra.Command{
	Use:   "export <db-path>",
	Short: "Export a verified chain slice for external anchoring",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuditExport,
}

var auditCheckExportCmd = &cobra.Command{
	Use:   "check-export <file>",
	Short: "Verify an exported chain slice offline",
	Args:  cobra.ExactArgs(1),
	RunE:  runAuditCheckExport,
}

func runAuditVerify(cmd *cobra.Command, args []string) error {
	storage, err := audit.OpenSQLite(args[0])
	if err != nil {
		return err
	}
	defer storage.Close()

	result, err := audit.VerifyChain(storage, 1, 0)
	if err != nil {
		return err
	}
	if result.Valid {
		fmt.Printf("OK: %d entries verified\n", result.Entries)
		return nil
	}
	fmt.Fprintf(os.Stderr, "FAILED at sequence %d: %s\n", result.BadSequence, result.Reason)
	os.Exit(1)
	return nil
}

func runAuditTail(cmd *cobra.Command, args []string) error {
	storage, err := audit.OpenSQLite(args[0])
	if err != nil {
		return err
	}
	defer storage.Close()

	count, err := storage.Count()
	if err != nil {
		return err
	}
	from := uint64(1)
	if count > uint64(tailEntries) {
		from = count - uint64(tailEntries) + 1
	}

	entries, err := storage.Read(from, 0)
	if err != nil {
		return err
	}
	for _, e := range entries {
		out, _ := json.MarshalIndent(e, "", "  ")
		fmt.Println(string(out))
	}
	return nil
}

func runAuditExport(cmd *cobra.Command, args []string) error {
	storage, err := audit.OpenSQLite(args[0])
	if err != nil {
		return err
	}
	defer storage.Close()

	export, err := audit.BuildExport(storage, exportFrom, exportTo)
	if err != nil {
		return err
	}

	w := os.Stdout
	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return fmt.Errorf("create export file: %w", err)
		}
		defer f.Close()
		w = f
	}
	if err := export.WriteJSON(w); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "exported %d entries, anchor %s, tail %s\n", len(export.Entries), export.AnchorHash, export.TailHash)
	return nil
}

func runAuditCheckExport(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	export, err := audit.ReadExport(f)
	if err != nil {
		return err
	}
	if err := export.Verify(); err != nil {
		fmt.Fprintf(os.Stderr, "FAILED: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("OK: %d entries, anchor %s, tail %s\n", len(export.Entries), export.AnchorHash, export.TailHash)
	return nil
}
