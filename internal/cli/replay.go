package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ppiankov/occkernel/internal/audit"
	"github.com/ppiankov/occkernel/internal/replay"
)

var (
	replayUpTo   uint64
	replayFormat string
)

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().Uint64Var(&replayUpTo, "upto", 0, "Replay the log prefix ending at this sequence (0 = tail)")
	replayCmd.Flags().StringVarP(&replayFormat, "format", "f", "text", "Output format (text|json)")
}

var replayCmd = &cobra.Command{
	Use:   "replay <db-path>",
	Short: "Reconstruct PDO state from the audit chain",
	Long:  "Folds the audit log prefix into the state table it documents.\nAn illegal recorded transition means the log describes an impossible\nhistory and fails the replay.",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	storage, err := audit.OpenSQLite(args[0])
	if err != nil {
		return err
	}
	defer storage.Close()

	table, err := replay.UpTo(storage, replayUpTo)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if replayFormat == "json" {
		rows := make([]*replay.ReconstructedPDO, len(ids))
		for i, id := range ids {
			rows[i] = table[id]
		}
		out, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	for _, id := range ids {
		r := table[id]
		line := fmt.Sprintf("%s  %s", r.ID, r.State)
		if r.ClaimedBy != "" {
			line += fmt.Sprintf("  claimed_by=%s", r.ClaimedBy)
		}
		if r.Outcome != "" {
			line += fmt.Sprintf("  outcome=%s", r.Outcome)
		}
		fmt.Printf("%s  last_seq=%d\n", line, r.LastSequence)
	}
	fmt.Printf("%d pdo(s) reconstructed\n", len(ids))
	return nil
}
