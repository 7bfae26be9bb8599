// Package cluster is for sorting related peptides into groups.
//
// Peptides are visited in registry order. Any peptide that isn't in a group
// yet seeds a new one, and the group grows by walking out along the seed's
// partners. A partner joins only if it passes the group's admission rule
// against the group as it is at that moment, so one peptide can end up in
// several groups and the groups aren't the connected components of the
// relation graph.
package cluster

import (
	"fmt"

	"github.com/jjtimmons/pepclust/internal/peptide"
	"github.com/jjtimmons/pepclust/internal/relate"
)

// Group is a cluster of peptides.
type Group struct {
	// ID is the group's position in discovery order
	ID int

	// Reference is the peptide that seeded the group
	Reference *peptide.Peptide

	// Members in the order they joined. Members[0] is the Reference
	Members []*peptide.Peptide
}

// Rule returns whether a candidate may join a group.
type Rule func(candidate *peptide.Peptide, g *Group) bool

// OverlapRule admits a candidate that overlaps every current member.
func OverlapRule(minOverlap int) Rule {
	return func(candidate *peptide.Peptide, g *Group) bool {
		for _, m := range g.Members {
			if !relate.Overlaps(candidate.Seq, m.Seq, minOverlap) {
				return false
			}
		}
		return true
	}
}

// SubsetRule admits a candidate that contains the group's seed. Unlike
// OverlapRule, the other members aren't consulted.
func SubsetRule() Rule {
	return func(candidate *peptide.Peptide, g *Group) bool {
		return relate.Contains(g.Reference.Seq, candidate.Seq)
	}
}

// Admissible returns whether candidate can join g: it's not already a
// member and it passes the rule.
func Admissible(candidate *peptide.Peptide, g *Group, rule Rule) bool {
	return !candidate.InGroup(g.ID) && rule(candidate, g)
}

// Partners returns the indexes of the peptides to try after p joins a group.
type Partners func(p *peptide.Peptide) []int

// Build groups the registry's peptides. The peptides' partner lists must
// already be filled by relate.Detect with the same mode.
func Build(reg *peptide.Registry, mode relate.Mode, minOverlap int) ([]*Group, error) {
	var groups []*Group
	switch mode {
	case relate.Overlap:
		groups = Walk(reg.Peptides, OverlapRule(minOverlap), func(p *peptide.Peptide) []int { return p.Overlaps })
	case relate.Subset:
		groups = Walk(reg.Peptides, SubsetRule(), func(p *peptide.Peptide) []int { return p.Supersets })
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}

	if orphans := reg.Orphans(); len(orphans) > 0 {
		return groups, fmt.Errorf("%d peptides joined no group, first is %q", len(orphans), orphans[0].Seq)
	}
	return groups, nil
}

// Walk seeds a group from every peptide without one, in order, and grows
// each group depth-first along partners.
func Walk(peptides []*peptide.Peptide, rule Rule, partners Partners) []*Group {
	var groups []*Group
	for _, p := range peptides {
		if len(p.Groups) > 0 {
			continue
		}

		g := &Group{ID: len(groups), Reference: p}
		groups = append(groups, g)
		grow(peptides, g, p, rule, partners)
	}
	return groups
}

// frame is a peptide in the group whose partners are still being tried.
type frame struct {
	p    *peptide.Peptide
	next int
}

// grow tries to admit seed and then, depth-first, each admitted peptide's
// partners. A partner is tested when it's reached, against the members
// admitted up to then.
func grow(peptides []*peptide.Peptide, g *Group, seed *peptide.Peptide, rule Rule, partners Partners) {
	if !admit(g, seed, rule) {
		return
	}

	stack := []frame{{p: seed}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		ps := partners(top.p)
		if top.next >= len(ps) {
			stack = stack[:len(stack)-1]
			continue
		}

		candidate := peptides[ps[top.next]]
		top.next++
		if admit(g, candidate, rule) {
			stack = append(stack, frame{p: candidate})
		}
	}
}

// admit adds p to g if it's admissible.
func admit(g *Group, p *peptide.Peptide, rule Rule) bool {
	if !Admissible(p, g, rule) {
		return false
	}
	p.Groups = append(p.Groups, g.ID)
	g.Members = append(g.Members, p)
	return true
}
