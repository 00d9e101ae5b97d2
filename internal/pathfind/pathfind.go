package pathfind

import (
	"errors"

	"github.com/vk/signalgraph/internal/graph"
	"github.com/vk/signalgraph/internal/typegraph"
)

// ErrNotInterface is returned when the start node does not carry the
// is_interface trait.
var ErrNotInterface = errors.New("start node does not carry the is_interface trait")

// FindPaths returns every connectivity path from start to another interface
// instance that is hierarchy-symmetric relative to start: only paths whose
// signature has returned to the starting depth are reported. The type graph
// supplies the trait and type metadata used to classify nodes; the search
// itself never mutates the graph.
func FindPaths(tg *typegraph.TypeGraph, start graph.Ref) ([]Path, error) {
	iface := tg.InterfaceType()
	if !graph.HasTraitOfType(start, iface) {
		return nil, ErrNotInterface
	}

	seed := signature{{parentType: graph.MustTypeOf(start).ID(), child: ""}}
	s := &search{
		iface:      iface,
		startDepth: len(seed),
		toVisit:    make(map[string]*bucket),
		visited:    make(map[string]*bucket),
	}
	s.enqueue(seed, newPath(start))

	for len(s.queue) > 0 {
		key := s.queue[0]
		s.queue = s.queue[1:]
		b, ok := s.toVisit[key]
		if !ok {
			// The key was queued twice before its first pop.
			continue
		}
		delete(s.toVisit, key)
		s.process(b)
	}

	// Only the bucket at the seed signature holds paths that returned to
	// the starting hierarchy level.
	out := s.visited[seed.key()]
	var results []Path
	for _, p := range out.paths {
		if p.Len() == 0 {
			continue // the seed path itself
		}
		if !graph.HasTraitOfType(p.Terminal(), s.iface) {
			continue
		}
		results = append(results, p)
	}
	return results, nil
}

// search is the per-call state of one FindPaths invocation: the two worklist
// maps keyed by signature, the FIFO of pending signatures, and the trait
// node used for interface checks. It is unreachable once FindPaths returns.
type search struct {
	iface      graph.Ref
	startDepth int
	toVisit    map[string]*bucket
	visited    map[string]*bucket
	queue      []string
}

// bucket is the candidate set for one signature, deduplicated by terminal
// node. The first path enqueued for a terminal wins.
type bucket struct {
	sig       signature
	paths     []Path
	terminals map[graph.NodeID]struct{}
}

func newBucket(sig signature) *bucket {
	return &bucket{sig: sig, terminals: make(map[graph.NodeID]struct{})}
}

func (b *bucket) has(id graph.NodeID) bool {
	_, ok := b.terminals[id]
	return ok
}

// add files a path unless its terminal is already claimed.
func (b *bucket) add(p Path) bool {
	id := p.Terminal().ID()
	if b.has(id) {
		return false
	}
	b.terminals[id] = struct{}{}
	b.paths = append(b.paths, p)
	return true
}

// enqueue files a path into the to-visit bucket for sig, unless that
// (signature, terminal) pair was already visited or is already queued.
func (s *search) enqueue(sig signature, p Path) {
	key := sig.key()
	if vb, ok := s.visited[key]; ok && vb.has(p.Terminal().ID()) {
		return
	}
	b, ok := s.toVisit[key]
	if !ok {
		b = newBucket(sig)
		s.toVisit[key] = b
		s.queue = append(s.queue, key)
	}
	b.add(p)
}

// process runs one pop of the worklist: a horizontal sweep over connection
// edges for every path in the bucket, then a vertical step attempt (down,
// then up) for every interface-terminated path the sweep left us with.
func (s *search) process(b *bucket) {
	key := b.sig.key()
	vb, ok := s.visited[key]
	if !ok {
		vb = newBucket(b.sig)
		s.visited[key] = vb
	}

	// work holds the paths this pop is responsible for: bucket entries not
	// seen by an earlier pop of the same signature, plus everything the
	// horizontal sweep discovers.
	var work []Path
	for _, p := range b.paths {
		if vb.add(p) {
			work = append(work, p)
		}
	}

	// Horizontal step: breadth-first over interface-connection edges.
	// Dedup by terminal is against the visited bucket, so a terminal found
	// here stays claimed for every later pop of this signature.
	frontier := append([]Path(nil), work...)
	for len(frontier) > 0 {
		p := frontier[0]
		frontier = frontier[1:]
		term := p.Terminal()
		_, _ = graph.WalkConnections(term, func(e *graph.Edge) graph.WalkResult {
			if e.Shallow() && len(b.sig) > s.startDepth {
				// Shallow connections are only valid at the starting
				// hierarchy level.
				return graph.Continue()
			}
			peer := e.Peer(term)
			if vb.has(peer.ID()) {
				return graph.Continue()
			}
			np := p.extend(e, peer)
			vb.add(np)
			work = append(work, np)
			frontier = append(frontier, np)
			return graph.Continue()
		})
	}

	for _, p := range work {
		term := p.Terminal()

		// Only paths ending at an interface continue vertically. The
		// horizontal sweep may pass through plain connection endpoints,
		// but a path stranded on one is dropped before any hierarchy
		// step, so it can never ascend, cross a higher-level connection
		// and descend to an interface the sweep itself cannot reach.
		if !graph.HasTraitOfType(term, s.iface) {
			continue
		}

		// Down step: only through the identifier recorded by the matching
		// ascent. This is what rules out sibling hopping: descending into
		// any other child of the parent is never attempted.
		if last := b.sig.last(); last.child != "" {
			if ce, ok := graph.ChildEdgeByName(term, last.child); ok {
				s.enqueue(b.sig.pop(), p.extend(ce, ce.Target()))
			}
		}

		// Up step: ascend to the composition parent, recording the hop.
		if pe, ok := graph.ParentEdge(term); ok {
			parent := pe.Source()
			up := b.sig.push(sigElem{
				parentType: graph.MustTypeOf(parent).ID(),
				child:      pe.Name(),
			})
			if p.hasShallow && len(up) > s.startDepth {
				// A path that took a shallow connection must not climb
				// past the starting depth.
				continue
			}
			s.enqueue(up, p.extend(pe, parent))
		}
	}
}
