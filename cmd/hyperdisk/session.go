package main

import (
	"github.com/gogpu/hyperdisk"
	"github.com/gogpu/hyperdisk/interact"
	"github.com/gogpu/hyperdisk/internal/script"
)

// replay loads a session file and rebuilds its graph.
func replay(path string) (*script.Session, *interact.Editor, error) {
	s, err := script.Load(path)
	if err != nil {
		return nil, nil, err
	}
	e, err := s.Replay(hyperdisk.NewGraph())
	if err != nil {
		return nil, nil, err
	}
	return s, e, nil
}
