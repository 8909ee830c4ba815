package cli

import (
	"fmt"

	"github.com/grendel/chainid/pkg/ui"
)

// DisplayHelp shows usage information for the application
func DisplayHelp(cs *ui.ColorScheme) {
	ui.PrintHeader(cs, "chainid - Blockchain Address & Public Key Identifier")

	ui.PrintSectionHeader(cs, "USAGE:")
	cs.Normal.Println("  chainid [options] <input> [<input> ...]")
	fmt.Println()

	ui.PrintSectionHeader(cs, "OPTIONS:")
	ui.PrintOption(cs, "-q       ", "Quiet output: one line per candidate, no boxes")
	ui.PrintOption(cs, "-help    ", "Display help information")
	fmt.Println()

	ui.PrintSectionHeader(cs, "EXAMPLES:")
	ui.PrintExample(cs, "chainid 0xd8da6bf26964af9d7eed9e03e53415d37aa96045", "Identify an EVM address")
	ui.PrintExample(cs, "chainid 1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa        ", "Identify a Bitcoin address")
	ui.PrintExample(cs, "chainid 02790be66...                              ", "Derive addresses from a public key")
	fmt.Println()

	ui.PrintSectionHeader(cs, "DESCRIPTION:")
	cs.Normal.Println("")
	cs.Normal.Println("  chainid classifies each input as a blockchain address or public key,")
	cs.Normal.Println("  reports every chain it could validly belong to with a confidence score,")
	cs.Normal.Println("  and normalizes it to canonical form. Public keys additionally get a")
	cs.Normal.Println("  derived address for every chain whose derivation rules are registered.")
	cs.Normal.Println("")
	cs.Normal.Println("  Shared-shape addresses (one hex address, ten EVM chains) always list")
	cs.Normal.Println("  every structurally valid chain; chainid never guesses just one.")
	cs.Normal.Println("")
}
