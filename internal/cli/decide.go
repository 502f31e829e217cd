package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppiankov/occkernel/internal/client"
	"github.com/ppiankov/occkernel/internal/model"
)

var (
	decideOperator   string
	decideCredential string
	decideTier       int
	decideOutcome    string
	decideJustify    string
	decideIncident   string
)

func init() {
	rootCmd.AddCommand(decideCmd)
	decideCmd.Flags().StringVar(&decideOperator, "operator", "", "Operator id (required)")
	decideCmd.Flags().StringVar(&decideCredential, "credential", "", "Operator credential for attestation")
	decideCmd.Flags().IntVar(&decideTier, "tier", 0, "Tier to exercise for this decision (required)")
	decideCmd.Flags().StringVar(&decideOutcome, "outcome", "", "Decision outcome: approved, rejected, or overridden (required)")
	decideCmd.Flags().StringVar(&decideJustify, "justification", "", "Free-text justification (required)")
	decideCmd.Flags().StringVar(&decideIncident, "incident", "", "Incident id, required for self-override")
	decideCmd.MarkFlagRequired("operator")
	decideCmd.MarkFlagRequired("tier")
	decideCmd.MarkFlagRequired("outcome")
	decideCmd.MarkFlagRequired("justification")
}

var decideCmd = &cobra.Command{
	Use:   "decide <pdo-id>",
	Short: "Commit a decision on a claimed PDO",
	Long:  "Applies an operator decision to a PDO you have claimed.\nA policy denial is printed with its code and reason; denials are\npermanent audit history either way.",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecide,
}

func runDecide(cmd *cobra.Command, args []string) error {
	c, err := client.New(kernelAddr)
	if err != nil {
		return err
	}
	defer c.Close()

	res, err := c.Commit(model.OverrideDecision{
		PdoID:         args[0],
		OperatorID:    decideOperator,
		TierUsed:      decideTier,
		Justification: decideJustify,
		IncidentID:    decideIncident,
		Outcome:       model.Outcome(decideOutcome),
	}, decideCredential)
	if err != nil {
		return err
	}

	if !res.Allowed {
		fmt.Fprintf(os.Stderr, "DENIED [%s]: %s\n", res.DenialCode, res.DenialReason)
		fmt.Fprintf(os.Stderr, "audit entry %d %s\n", res.EntrySequence, res.EntryHash)
		os.Exit(1)
	}

	out, _ := json.MarshalIndent(res.PDO, "", "  ")
	fmt.Println(string(out))
	fmt.Fprintf(os.Stderr, "committed as audit entry %d %s\n", res.EntrySequence, res.EntryHash)
	return nil
}
