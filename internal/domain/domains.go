package domain

import "strings"

// MetaDomain names the always-resident core set: nodes in this domain
// are returned in full by every boot call regardless of recency.
const MetaDomain = "meta"

// UnassignedDomain is the display name for nodes with an empty domain.
const UnassignedDomain = "(unassigned)"

// DomainInfo is one row of the flat per-domain grouping: exact domain
// name, node count and most recent update.
type DomainInfo struct {
	Name        string
	Count       int
	LastUpdated float64
}

// DomainNode is a root bucket of the projected domain tree. A domain
// equal to the root contributes directly; deeper domains are listed as
// sub-domains and fold into the root's aggregate count and freshness.
type DomainNode struct {
	Name        string
	Count       int
	LastUpdated float64
	SubDomains  []DomainInfo
}

// DisplayName maps the empty domain to its distinguished bucket name.
func DisplayName(domain string) string {
	if domain == "" {
		return UnassignedDomain
	}
	return domain
}

// InDomain reports whether nodeDomain falls under name: equal to it or
// a dot-boundary descendant. "a" covers "a.b" but never "ab".
func InDomain(nodeDomain, name string) bool {
	return nodeDomain == name || strings.HasPrefix(nodeDomain, name+".")
}

// BuildDomainTree folds a flat grouping (ordered by domain name) into
// root buckets. Roots without exact-match nodes still appear when any
// sub-domain exists under them. The hierarchy is derived here on every
// read; it is never stored.
func BuildDomainTree(rows []DomainInfo) []*DomainNode {
	index := make(map[string]*DomainNode)
	var roots []*DomainNode

	for _, r := range rows {
		name := DisplayName(r.Name)
		root := strings.Split(name, ".")[0]

		bucket, ok := index[root]
		if !ok {
			bucket = &DomainNode{Name: root}
			index[root] = bucket
			roots = append(roots, bucket)
		}

		bucket.Count += r.Count
		if r.LastUpdated > bucket.LastUpdated {
			bucket.LastUpdated = r.LastUpdated
		}
		if len(name) > len(root) {
			bucket.SubDomains = append(bucket.SubDomains, DomainInfo{
				Name:        name,
				Count:       r.Count,
				LastUpdated: r.LastUpdated,
			})
		}
	}

	return roots
}
