// Package main provides a CLI tool for generating owner tokens for the Aquaria API.
// These tokens use the dev signing key by default and will NOT work in production.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	jwttoken "aquaria/internal/jwt_token"
	"aquaria/internal/platform/config"
	id "aquaria/pkg/domain"
)

const (
	defaultIssuer   = "aquaria"
	defaultRole     = "OWNER"
	defaultTokenTTL = 15 * time.Minute
)

type tokenOutput struct {
	Token     string            `json:"token"`
	Type      string            `json:"type"`
	ExpiresIn string            `json:"expires_in"`
	Claims    map[string]any    `json:"claims,omitempty"`
	Usage     map[string]string `json:"usage"`
}

func main() {
	ownerCmd := flag.NewFlagSet("owner", flag.ExitOnError)
	ownerID := ownerCmd.String("owner-id", "", "Owner ID (UUID). Generated if empty.")
	ownerRole := ownerCmd.String("role", defaultRole, "Role claim")
	ownerTTL := ownerCmd.Duration("ttl", defaultTokenTTL, "Token time-to-live")
	ownerKey := ownerCmd.String("key", config.DevSigningKey, "HS256 signing key")
	ownerIssuer := ownerCmd.String("issuer", defaultIssuer, "Issuer claim")
	ownerJSON := ownerCmd.Bool("json", false, "Output as JSON")

	inspectCmd := flag.NewFlagSet("inspect", flag.ExitOnError)
	inspectKey := inspectCmd.String("key", config.DevSigningKey, "HS256 signing key")
	inspectIssuer := inspectCmd.String("issuer", defaultIssuer, "Expected issuer claim")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "owner":
		ownerCmd.Parse(os.Args[2:]) //nolint:errcheck // ExitOnError
		generateOwnerToken(*ownerID, *ownerRole, *ownerKey, *ownerIssuer, *ownerTTL, *ownerJSON)
	case "inspect":
		inspectCmd.Parse(os.Args[2:]) //nolint:errcheck // ExitOnError
		if inspectCmd.NArg() != 1 {
			fmt.Fprintln(os.Stderr, "usage: tokengen inspect [flags] <token>")
			os.Exit(1)
		}
		inspectToken(inspectCmd.Arg(0), *inspectKey, *inspectIssuer)
	case "-h", "--help", "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tokengen - Generate owner tokens for the Aquaria API

WARNING: The default signing key is the development key and will NOT work in production.

Usage:
  tokengen <command> [flags]

Commands:
  owner     Generate an owner access token (JWT)
  inspect   Validate a token and print its claims

Examples:
  # Generate a token for a random owner
  tokengen owner

  # Generate a token for a specific owner with a longer TTL
  tokengen owner -owner-id "550e8400-e29b-41d4-a716-446655440000" -ttl 1h

  # Check a token against a custom key
  tokengen inspect -key "$JWT_SIGNING_KEY" eyJhbGciOi...

  # Output as JSON
  tokengen owner -json

Use "tokengen <command> -h" for more information about a command.`)
}

func generateOwnerToken(rawOwnerID, role, key, issuer string, ttl time.Duration, jsonOutput bool) {
	ownerID := parseOrGenerateOwnerID(rawOwnerID)
	issued, err := jwttoken.NewJWTService(key, issuer, ttl).GenerateOwnerToken(context.Background(), ownerID, role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating token: %v\n", err)
		os.Exit(1)
	}

	if jsonOutput {
		printJSON(tokenOutput{
			Token:     issued.Token,
			Type:      "Bearer",
			ExpiresIn: ttl.String(),
			Claims: map[string]any{
				"owner_id": ownerID.String(),
				"role":     role,
				"jti":      issued.JTI,
				"iss":      issuer,
				"exp":      issued.ExpiresAt.Unix(),
			},
			Usage: map[string]string{
				"header": "Authorization: Bearer " + issued.Token,
				"curl":   fmt.Sprintf(`curl -H "Authorization: Bearer %s" http://localhost:8080/api/aquariums`, issued.Token),
			},
		})
		return
	}

	fmt.Println("Owner Token Generated")
	fmt.Println("=====================")
	fmt.Printf("Owner ID:   %s\n", ownerID)
	fmt.Printf("Role:       %s\n", role)
	fmt.Printf("Token ID:   %s\n", issued.JTI)
	fmt.Printf("Expires At: %s\n", issued.ExpiresAt.Format(time.RFC3339))
	fmt.Println()
	fmt.Println("Token:")
	fmt.Println(issued.Token)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  curl -H \"Authorization: Bearer %s\" http://localhost:8080/api/aquariums\n", issued.Token)
}

func inspectToken(token, key, issuer string) {
	claims, err := jwttoken.NewJWTService(key, issuer, defaultTokenTTL).ValidateToken(token)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Token rejected: %v\n", err)
		os.Exit(1)
	}
	printJSON(map[string]any{
		"owner_id": claims.OwnerID,
		"role":     claims.Role,
		"jti":      claims.ID,
		"iss":      claims.Issuer,
		"exp":      claims.ExpiresAt.Time.Format(time.RFC3339),
	})
}

func parseOrGenerateOwnerID(input string) id.OwnerID {
	if input == "" {
		return id.NewOwnerID()
	}
	ownerID, err := id.ParseOwnerID(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid owner-id UUID: %s\n", input)
		os.Exit(1)
	}
	return ownerID
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding JSON: %v\n", err)
		os.Exit(1)
	}
}
