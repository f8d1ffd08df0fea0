package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/term"

	"github.com/custodia-labs/docsmd/internal/adapters/driving/oauth"
	"github.com/custodia-labs/docsmd/internal/core/domain"
)

// loginTimeout bounds how long login waits for the browser redirect.
const loginTimeout = 5 * time.Minute

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage Google sign-in",
	Long: `Configure the Google OAuth client and sign in.

docsmd uses an OAuth client of type "Desktop app" from the Google Cloud
console, with the Docs and Drive APIs enabled. Only read-only scopes are
requested.

Examples:
  docsmd auth configure
  docsmd auth login
  docsmd auth status --check`,
}

var authConfigureCmd = &cobra.Command{
	Use:   "configure",
	Short: "Store the OAuth client ID and secret",
	RunE:  runAuthConfigure,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in with Google in the browser",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sign-in status",
	RunE:  runAuthStatus,
}

var authLogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored token",
	RunE:  runAuthLogout,
}

// Flags for auth.
var (
	authClientID     string
	authClientSecret string
	authNoBrowser    bool
	authCheck        bool
)

// openBrowser opens the consent page. Tests replace it.
var openBrowser = oauth.OpenBrowser

func init() {
	authConfigureCmd.Flags().StringVar(&authClientID, "client-id", "", "OAuth client ID (prompted when omitted)")
	authConfigureCmd.Flags().StringVar(&authClientSecret, "client-secret", "", "OAuth client secret (prompted when omitted)")
	authLoginCmd.Flags().BoolVar(&authNoBrowser, "no-browser", false, "print the sign-in URL instead of opening a browser")
	authStatusCmd.Flags().BoolVar(&authCheck, "check", false, "verify the token with a Drive API call")

	authCmd.AddCommand(authConfigureCmd)
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	authCmd.AddCommand(authLogoutCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthConfigure(cmd *cobra.Command, _ []string) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}

	reader := bufio.NewReader(cmd.InOrStdin())

	clientID := authClientID
	if clientID == "" {
		cmd.Print("Client ID: ")
		clientID = readLine(reader)
	}
	clientSecret := authClientSecret
	if clientSecret == "" {
		cmd.Print("Client secret: ")
		clientSecret = readSecret(cmd.InOrStdin(), reader)
		cmd.Println()
	}

	if clientID == "" || clientSecret == "" {
		return fmt.Errorf("%w: client ID and secret are required", domain.ErrInvalidInput)
	}

	if err := a.config.Set(domain.ConfigGoogleClientID, clientID); err != nil {
		return fmt.Errorf("saving client ID: %w", err)
	}
	if err := a.config.Set(domain.ConfigGoogleClientSecret, clientSecret); err != nil {
		return fmt.Errorf("saving client secret: %w", err)
	}

	cmd.Printf("Saved OAuth client to %s\n", a.config.Path())
	cmd.Println("Next: docsmd auth login")
	return nil
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}
	if a.session.State() == domain.AuthNotConfigured {
		return errors.New(domain.AuthNotConfigured.String())
	}

	state := uuid.New().String()
	verifier := oauth2.GenerateVerifier()

	server := oauth.NewCallbackServer(a.config.GetInt(domain.ConfigOAuthPort), state)
	if err := server.Start(); err != nil {
		return err
	}
	defer server.Stop() //nolint:errcheck

	redirect := server.RedirectURI()
	url := a.session.AuthCodeURL(state, verifier, redirect)

	if authNoBrowser {
		cmd.Printf("Open this URL to sign in:\n\n  %s\n\n", url)
	} else if err := openBrowser(url); err != nil {
		cmd.Printf("Could not open a browser. Open this URL to sign in:\n\n  %s\n\n", url)
	} else {
		cmd.Println("Opened the browser to sign in. Waiting for the redirect...")
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), loginTimeout)
	defer cancel()

	code, err := server.WaitForCode(ctx)
	if err != nil {
		return fmt.Errorf("waiting for sign-in: %w", err)
	}
	if err := a.session.Exchange(ctx, code, verifier, redirect); err != nil {
		return err
	}

	cmd.Println("Signed in.")
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}

	if os.Getenv(EnvAccessToken) != "" {
		cmd.Printf("Using access token from %s\n", EnvAccessToken)
	} else {
		cmd.Println(a.session.State().String())
	}

	if !authCheck {
		return nil
	}
	if a.fetcher == nil {
		return domain.ErrAuthRequired
	}
	if err := a.fetcher.CheckStatus(cmd.Context()); err != nil {
		return fmt.Errorf("checking access: %w", err)
	}
	cmd.Println("Google Drive is reachable.")
	return nil
}

func runAuthLogout(cmd *cobra.Command, _ []string) error {
	a, err := getApp(cmd)
	if err != nil {
		return err
	}
	if err := a.session.Logout(); err != nil {
		return fmt.Errorf("removing token: %w", err)
	}
	cmd.Println("Signed out.")
	return nil
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// readSecret reads without echo when in is a terminal.
func readSecret(in io.Reader, reader *bufio.Reader) string {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		secret, err := term.ReadPassword(int(f.Fd()))
		if err == nil {
			return strings.TrimSpace(string(secret))
		}
	}
	return readLine(reader)
}
