/*
Copyright © 2024 paul <paul@denknerd.org>
*/
package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/toothbrush/portal-dump/cloudgenix"
)

// resolveAuthToken finds the portal auth token: the AUTH_TOKEN environment
// variable wins, then --auth-token-cmd is run as a fallback.
func resolveAuthToken() (string, error) {
	if token := os.Getenv("AUTH_TOKEN"); token != "" {
		return token, nil
	}

	if len(AuthTokenCmd) < 1 {
		return "", fmt.Errorf("cmd: no auth token; set AUTH_TOKEN or provide --auth-token-cmd")
	}

	tokenCmdOutput, err := exec.Command(AuthTokenCmd[0], AuthTokenCmd[1:]...).Output()
	if err != nil {
		return "", fmt.Errorf("cmd: couldn't execute auth-token-cmd '%v': %w", AuthTokenCmd, err)
	}

	token := strings.Split(string(tokenCmdOutput), "\n")[0]
	if token == "" {
		return "", fmt.Errorf("cmd: auth-token-cmd '%v' produced no token", AuthTokenCmd)
	}

	return token, nil
}

// newPortalAPI builds the CloudGenix API client from the resolved token.
func newPortalAPI() (*cloudgenix.API, string, error) {
	token, err := resolveAuthToken()
	if err != nil {
		return nil, "", err
	}

	api, err := cloudgenix.NewAPI(token)
	if err != nil {
		return nil, "", fmt.Errorf("cmd: CloudGenix API creation failed: %w", err)
	}

	return api, token, nil
}
