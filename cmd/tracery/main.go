// Command tracery expands a generative grammar and prints the results.
//
// With no argument a built-in demo grammar is used; pass a literal JSON
// grammar, or "-" to read one from standard input.
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/tracery-go/tracery"
)

const defaultGrammar = `{
    "origin": [ "The #adjective# #color# #animal# jumps over the #adjective# #animal#" ],
    "adjective": [ "quick", "lazy", "slow", "tired", "drunk", "awake", "frantic" ],
    "color": [ "blue", "red", "yellow", "green", "purple", "orange", "pink", "brown", "black", "white" ],
    "animal": [ "dog", "fox", "cow", "horse", "chicken", "pig", "bird", "fish" ]
}`

var cli struct {
	Grammar    string        `arg:"" optional:"" help:"Literal JSON grammar, or \"-\" to read standard input. Defaults to a built-in demo grammar."`
	Key        string        `help:"Starting symbol. Defaults to the grammar's default key."`
	Seed       int64         `help:"Random seed. Defaults to the current time."`
	Iterations int           `help:"Number of outputs to produce, 0 for unlimited." default:"0"`
	Interval   time.Duration `help:"Pause between outputs." default:"2s"`
	AST        bool          `help:"Dump the parsed rules and exit."`
	Keys       bool          `help:"List defined and referenced symbols and exit."`
}

func main() {
	kctx := kong.Parse(&cli, kong.Description("Generate text from a tracery grammar."))
	kctx.FatalIfErrorf(run())
}

func run() error {
	src := cli.Grammar
	switch src {
	case "":
		src = defaultGrammar
	case "-":
		buf, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		src = string(buf)
	}
	g, err := tracery.FromJSON(src)
	if err != nil {
		return err
	}
	switch {
	case cli.AST:
		dumpAST(g)
		return nil
	case cli.Keys:
		return dumpKeys(g)
	}

	seed := cli.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	for i := 0; cli.Iterations == 0 || i < cli.Iterations; i++ {
		if i > 0 {
			time.Sleep(cli.Interval)
		}
		var out string
		if cli.Key != "" {
			out, err = g.Execute(cli.Key, rng)
		} else {
			out, err = g.Flatten(rng)
		}
		if err != nil {
			return err
		}
		fmt.Println(out)
	}
	return nil
}

func dumpAST(g *tracery.Grammar) {
	for _, key := range g.Keys() {
		rules, _ := g.Get(key)
		fmt.Printf("%s:\n", key)
		for _, rule := range rules {
			fmt.Println(repr.String(rule, repr.Indent("  ")))
		}
	}
}

func dumpKeys(g *tracery.Grammar) error {
	referenced := map[string]bool{}
	for _, key := range g.Keys() {
		rules, _ := g.Get(key)
		for _, rule := range rules {
			err := tracery.Visit(rule, func(n tracery.Node, next func() error) error {
				if tag, ok := n.(tracery.Tag); ok && tag.Key != "" {
					referenced[tag.Key] = true
				}
				return next()
			})
			if err != nil {
				return err
			}
		}
	}
	for _, key := range g.Keys() {
		fmt.Println(key)
		delete(referenced, key)
	}
	undefined := maps.Keys(referenced)
	slices.Sort(undefined)
	for _, key := range undefined {
		fmt.Printf("%s (referenced, not defined)\n", key)
	}
	return nil
}
