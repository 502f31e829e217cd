package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/occkernel/internal/client"
)

var (
	killOperator   string
	killCredential string
	killReason     string
)

func init() {
	rootCmd.AddCommand(killCmd)
	killCmd.AddCommand(killEngageCmd)
	killCmd.AddCommand(killDisengageCmd)
	killCmd.PersistentFlags().StringVar(&killOperator, "operator", "", "Operator id (required)")
	killCmd.PersistentFlags().StringVar(&killCredential, "credential", "", "Operator credential for attestation")
	killCmd.PersistentFlags().StringVar(&killReason, "reason", "", "Reason, recorded in the audit chain (required)")
	killCmd.MarkPersistentFlagRequired("operator")
	killCmd.MarkPersistentFlagRequired("reason")
}

var killCmd = &cobra.Command{
	Use:   "killswitch",
	Short: "Engage or disengage kernel-wide fail-closed mode",
}

var killEngageCmd = &cobra.Command{
	Use:   "engage",
	Short: "Reject all new claims and transitions until disengaged",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setKillSwitch(true)
	},
}

var killDisengageCmd = &cobra.Command{
	Use:   "disengage",
	Short: "Clear fail-closed mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		return setKillSwitch(false)
	},
}

func setKillSwitch(engage bool) error {
	c, err := client.New(kernelAddr)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.KillSwitch(killOperator, killCredential, engage, killReason); err != nil {
		return err
	}
	if engage {
		fmt.Println("kill switch engaged")
	} else {
		fmt.Println("kill switch disengaged")
	}
	return nil
}
