package demo

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/g-m-twostay/go-bintrees/Trees"
	"github.com/g-m-twostay/go-bintrees/internal/config"
)

// printer keeps the first write error and skips every write after it.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) linef(format string, a ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format+"\n", a...)
	}
}

func writeLevels[T any](p *printer, tr Trees.Traversable[T], format func(T) string, sep string) {
	for next := tr.LevelOrder(); ; {
		level, ok := next()
		if !ok {
			return
		}
		parts := make([]string, len(level))
		for i, v := range level {
			parts[i] = format(v)
		}
		p.linef("%s", strings.Join(parts, sep))
	}
}

func runeString(r rune) string {
	return string(r)
}

func render(seq func(func(rune) bool)) string {
	var sb strings.Builder
	seq(func(r rune) bool {
		sb.WriteRune(r)
		return true
	})
	return sb.String()
}

// BST inserts cfg.Values, inserts cfg.Insert, removes cfg.Remove, printing
// the level order after each step, then prints the minimum, maximum and
// whether cfg.Query is present, each found both recursively and
// iteratively.
func BST(w io.Writer, cfg config.BST, logger zerolog.Logger) error {
	tree := Trees.New[int]()
	insert, remove := tree.Insert, tree.Remove
	if cfg.Recursive {
		insert, remove = tree.InsertRec, tree.RemoveRec
	}
	p := &printer{w: w}
	levels := func(title string) {
		p.linef("%s, level order:", title)
		writeLevels[int](p, tree, strconv.Itoa, " ")
	}

	for _, v := range cfg.Values {
		if !insert(v) {
			logger.Debug().Int("value", v).Msg("duplicate ignored")
		}
	}
	logger.Debug().Ints("values", cfg.Values).Uint("size", tree.Size()).Bool("recursive", cfg.Recursive).Msg("inserted")
	levels("binary search tree")

	insert(cfg.Insert)
	levels(fmt.Sprintf("after inserting %d", cfg.Insert))

	if !remove(cfg.Remove) {
		logger.Debug().Int("value", cfg.Remove).Msg("nothing to remove")
	}
	levels(fmt.Sprintf("after removing %d", cfg.Remove))

	if tree.Corrupt() {
		return errors.New("tree ordering is broken")
	}

	queries := []struct {
		label string
		f     func() (int, error)
	}{
		{"minimum (recursive)", tree.MinimumRec},
		{"minimum (iterative)", tree.Minimum},
		{"maximum (recursive)", tree.MaximumRec},
		{"maximum (iterative)", tree.Maximum},
	}
	for _, q := range queries {
		v, err := q.f()
		if err != nil {
			logger.Error().Err(err).Str("query", q.label).Msg("query failed")
			return errors.Wrap(err, q.label)
		}
		p.linef("%s: %d", q.label, v)
	}
	p.linef("contains %d (recursive): %t", cfg.Query, tree.HasRec(cfg.Query))
	p.linef("contains %d (iterative): %t", cfg.Query, tree.Has(cfg.Query))

	logger.Debug().Uint("size", tree.Size()).Int("height", tree.Height()).Msg("done")
	return errors.Wrap(p.err, "failed to write output")
}

// Expr builds the tree of cfg.Postfix and prints its pre-order, in-order
// and post-order, then its level order one level per line.
func Expr(w io.Writer, cfg config.Expr, logger zerolog.Logger) error {
	tree, err := Trees.ParsePostfix(cfg.Postfix)
	if err != nil {
		logger.Error().Err(err).Str("postfix", cfg.Postfix).Msg("parse failed")
		return errors.Wrapf(err, "failed to parse %q", cfg.Postfix)
	}
	logger.Debug().Uint("size", tree.Size()).Int("height", tree.Height()).Str("infix", tree.Parenthesized()).Msg("parsed")

	p := &printer{w: w}
	p.linef("pre-order: %s", render(tree.PreOrder()))
	p.linef("in-order: %s", render(tree.InOrder()))
	p.linef("post-order: %s", render(tree.PostOrder()))
	p.linef("level order:")
	writeLevels[rune](p, tree, runeString, "")

	return errors.Wrap(p.err, "failed to write output")
}
