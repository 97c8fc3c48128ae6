package checkout

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bagelpay/bagelpay-go/adapter/cli"
	"github.com/bagelpay/bagelpay-go/bagelpay"
)

var (
	requestID  string
	units      string
	email      string
	name       string
	successURL string
	metadata   []string
)

var createCmd = &cobra.Command{
	Use:   "create [product-id]",
	Short: "Create a checkout session",
	Long: `Create a hosted checkout session for a product and print the
payment URL. A request ID is generated when not supplied; pass your own
to make retries idempotent.

Examples:
  bagelpay checkout create prod_abc -e buyer@example.com
  bagelpay checkout create prod_abc -e buyer@example.com -u 3 -m campaign=launch`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.Client == nil {
			return fmt.Errorf("no API client configured; set BAGELPAY_API_KEY")
		}

		if requestID == "" {
			requestID = uuid.NewString()
		}

		meta, err := parseMetadata(metadata)
		if err != nil {
			return err
		}

		req := bagelpay.CheckoutRequest{
			ProductID:  args[0],
			RequestID:  requestID,
			Units:      units,
			SuccessURL: successURL,
			Metadata:   meta,
		}
		if email != "" || name != "" {
			req.Customer = &bagelpay.Customer{Email: email, Name: name}
		}

		session, err := app.Client.CreateCheckout(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("failed to create checkout: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Checkout created: %s\n", session.PaymentID)
		fmt.Fprintf(out, "  Status: %s\n", session.Status)
		fmt.Fprintf(out, "  URL: %s\n", session.CheckoutURL)
		fmt.Fprintf(out, "  Expires: %s\n", session.ExpiresOn.Format("2006-01-02 15:04:05 MST"))
		fmt.Fprintf(out, "  Request ID: %s\n", requestID)
		return nil
	},
}

func parseMetadata(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	meta := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid metadata %q: expected key=value", pair)
		}
		meta[key] = value
	}
	return meta, nil
}

func init() {
	createCmd.Flags().StringVarP(&requestID, "request-id", "r", "", "idempotency key (generated when empty)")
	createCmd.Flags().StringVarP(&units, "units", "u", "", "quantity to purchase (default 1)")
	createCmd.Flags().StringVarP(&email, "email", "e", "", "customer email")
	createCmd.Flags().StringVarP(&name, "name", "n", "", "customer name")
	createCmd.Flags().StringVar(&successURL, "success-url", "", "redirect URL after payment")
	createCmd.Flags().StringArrayVarP(&metadata, "meta", "m", nil, "metadata key=value (repeatable)")
}
