package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/HM-aes/smbshield/internal/account"
)

var billingCmd = &cobra.Command{
	Use:   "billing",
	Short: "Apply billing events",
}

var billingApplyCmd = &cobra.Command{
	Use:   "apply <account-id>",
	Short: "Apply a tier transition from the billing source",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tier, _ := cmd.Flags().GetString("tier")
		ref, _ := cmd.Flags().GetString("ref")

		switch account.Tier(tier) {
		case account.TierFree, account.TierPro, account.TierEnterprise:
		default:
			return fmt.Errorf("unknown tier %q", tier)
		}

		eng, st, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		err = eng.ApplyBillingEvent(cmd.Context(), account.BillingEvent{
			AccountID:  args[0],
			ToTier:     account.Tier(tier),
			Reference:  ref,
			OccurredAt: time.Now(),
		})
		if err != nil {
			return err
		}
		fmt.Printf("account %s is now on tier %s\n", args[0], tier)
		return nil
	},
}

func init() {
	billingApplyCmd.Flags().String("tier", "", "Target tier: free, pro, enterprise")
	billingApplyCmd.Flags().String("ref", "", "Billing reference (invoice or event ID)")
	_ = billingApplyCmd.MarkFlagRequired("tier")

	billingCmd.AddCommand(billingApplyCmd)
}
