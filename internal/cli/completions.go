package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/multijob/pkg/multijob"
)

// completeCoercions provides shell completion for coercion flag values.
func completeCoercions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, c := range multijob.Coercions {
		if strings.HasPrefix(string(c), toComplete) {
			matches = append(matches, string(c))
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}
