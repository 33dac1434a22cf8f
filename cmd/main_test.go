package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigArgs(t *testing.T) {
	require.Equal(t, []string{"-c", "custom.yml"}, configArgs([]string{"generate", "-c", "custom.yml"}))
	require.Equal(t, []string{"-c", "custom.yml"}, configArgs([]string{"--config", "custom.yml", "audit"}))
	require.Nil(t, configArgs([]string{"generate"}))
	require.Nil(t, configArgs([]string{"generate", "-c"}))
}

func TestConfirmation(t *testing.T) {
	require.Equal(t,
		"10k-reserved-domains.csv has been written and should have sha256 hash "+
			"05d7257769904da71a864601b37e0e5522b7ac45e26259191201f71c236ac5ae",
		confirmation("10k-reserved-domains.csv", "05d7257769904da71a864601b37e0e5522b7ac45e26259191201f71c236ac5ae"))
	require.Equal(t, "out.csv has been written", confirmation("out.csv", ""))
}
