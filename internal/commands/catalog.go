package commands

import (
	"fmt"

	"sequencer/internal/parser"
)

var position = Parameter{Name: "pos", Type: "int", Description: "0-based slot position", Required: true}

var catalog = []HelpInfo{
	{
		Command:     "INSERT",
		Type:        parser.Insert,
		Description: "Store a sequence in a slot, replacing its previous content",
		Usage:       "INSERT <pos> <DNA|RNA> <sequence>",
		Parameters: []Parameter{
			position,
			{Name: "type", Type: "DNA|RNA", Description: "sequence type", Required: true},
			{Name: "sequence", Type: "string", Description: "letters from ACGT (DNA) or ACGU (RNA)", Required: true},
		},
		Examples: []Example{
			{Command: "INSERT 0 DNA ACGT", Description: "Store DNA ACGT at position 0"},
			{Command: "insert 1 rna acgu", Description: "Commands and letters are case-insensitive"},
		},
	},
	{
		Command:     "REMOVE",
		Type:        parser.Remove,
		Description: "Clear a slot",
		Usage:       "REMOVE <pos>",
		Parameters:  []Parameter{position},
		Examples: []Example{
			{Command: "REMOVE 0", Description: "Clear position 0"},
		},
	},
	{
		Command:     "PRINT",
		Type:        parser.Print,
		Description: "Print every occupied slot, or a single one",
		Usage:       "PRINT [pos]",
		Parameters: []Parameter{
			{Name: "pos", Type: "int", Description: "0-based slot position; omit to print all", Required: false},
		},
		Examples: []Example{
			{Command: "PRINT", Description: "Print all occupied positions"},
			{Command: "PRINT 2", Description: "Print position 2"},
		},
	},
	{
		Command:     "CLIP",
		Type:        parser.Clip,
		Description: "Keep the suffix of a sequence starting at an index",
		Usage:       "CLIP <pos> <start>",
		Parameters: []Parameter{
			position,
			{Name: "start", Type: "int", Description: "index of the first kept letter, below the sequence length", Required: true},
		},
		Examples: []Example{
			{Command: "CLIP 0 2", Description: "ACGT at position 0 becomes GT"},
		},
	},
	{
		Command:     "COPY",
		Type:        parser.Copy,
		Description: "Copy a sequence into another slot, overwriting it",
		Usage:       "COPY <src> <dst>",
		Parameters: []Parameter{
			{Name: "src", Type: "int", Description: "source position", Required: true},
			{Name: "dst", Type: "int", Description: "destination position", Required: true},
		},
		Examples: []Example{
			{Command: "COPY 0 3", Description: "Duplicate position 0 into position 3"},
		},
	},
	{
		Command:     "SWAP",
		Type:        parser.Swap,
		Description: "Exchange the tails of two sequences of the same type",
		Usage:       "SWAP <pos1> <start1> <pos2> <start2>",
		Parameters: []Parameter{
			{Name: "pos1", Type: "int", Description: "first position", Required: true},
			{Name: "start1", Type: "int", Description: "start of the first tail, up to its length", Required: true},
			{Name: "pos2", Type: "int", Description: "second position", Required: true},
			{Name: "start2", Type: "int", Description: "start of the second tail, up to its length", Required: true},
		},
		Examples: []Example{
			{Command: "SWAP 0 2 1 2", Description: "AAAA and CCCC become AACC and CCAA"},
		},
		Notes: []string{"A start equal to the sequence length selects an empty tail"},
	},
	{
		Command:     "TRANSCRIBE",
		Type:        parser.Transcribe,
		Description: "Convert a DNA sequence to RNA",
		Usage:       "TRANSCRIBE <pos>",
		Parameters:  []Parameter{position},
		Examples: []Example{
			{Command: "TRANSCRIBE 0", Description: "DNA ACGT becomes RNA UCGT"},
		},
		Notes: []string{"Letters map A→T, C→G, G→C, T→U and the result is reversed"},
	},
}

func init() {
	for _, info := range catalog {
		if err := GlobalRegistry.Register(info); err != nil {
			panic(fmt.Sprintf("failed to register %s command: %v", info.Command, err))
		}
	}
}
