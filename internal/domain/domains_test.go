package domain

import "testing"

func TestInDomain(t *testing.T) {
	tests := []struct {
		name       string
		nodeDomain string
		scope      string
		want       bool
	}{
		{
			name:       "exact match",
			nodeDomain: "infra",
			scope:      "infra",
			want:       true,
		},
		{
			name:       "direct child",
			nodeDomain: "infra.network",
			scope:      "infra",
			want:       true,
		},
		{
			name:       "deep descendant",
			nodeDomain: "infra.network.wifi",
			scope:      "infra",
			want:       true,
		},
		{
			name:       "shared prefix without dot boundary",
			nodeDomain: "infrastructure",
			scope:      "infra",
			want:       false,
		},
		{
			name:       "parent is not in child",
			nodeDomain: "infra",
			scope:      "infra.network",
			want:       false,
		},
		{
			name:       "unrelated",
			nodeDomain: "research",
			scope:      "infra",
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InDomain(tt.nodeDomain, tt.scope); got != tt.want {
				t.Errorf("InDomain(%q, %q) = %v, want %v", tt.nodeDomain, tt.scope, got, tt.want)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	if got := DisplayName(""); got != UnassignedDomain {
		t.Errorf("DisplayName(\"\") = %q, want %q", got, UnassignedDomain)
	}
	if got := DisplayName("infra"); got != "infra" {
		t.Errorf("DisplayName(\"infra\") = %q, want \"infra\"", got)
	}
}

func TestBuildDomainTree_FoldsSubDomains(t *testing.T) {
	rows := []DomainInfo{
		{Name: "infra", Count: 3, LastUpdated: 100},
		{Name: "infra.network", Count: 2, LastUpdated: 300},
		{Name: "infra.network.wifi", Count: 1, LastUpdated: 200},
		{Name: "research", Count: 5, LastUpdated: 50},
	}

	roots := BuildDomainTree(rows)

	if len(roots) != 2 {
		t.Fatalf("expected 2 roots, got %d", len(roots))
	}

	infra := roots[0]
	if infra.Name != "infra" {
		t.Fatalf("expected first root infra, got %s", infra.Name)
	}
	if infra.Count != 6 {
		t.Errorf("expected aggregate count 6, got %d", infra.Count)
	}
	if infra.LastUpdated != 300 {
		t.Errorf("expected max freshness 300, got %v", infra.LastUpdated)
	}
	if len(infra.SubDomains) != 2 {
		t.Fatalf("expected 2 sub-domains, got %d", len(infra.SubDomains))
	}
	if infra.SubDomains[0].Name != "infra.network" || infra.SubDomains[0].Count != 2 {
		t.Errorf("unexpected first sub-domain: %+v", infra.SubDomains[0])
	}

	research := roots[1]
	if research.Count != 5 || len(research.SubDomains) != 0 {
		t.Errorf("unexpected research bucket: %+v", research)
	}
}

func TestBuildDomainTree_RootWithoutExactNodes(t *testing.T) {
	// "projects" has no direct nodes but still gets a root bucket.
	rows := []DomainInfo{
		{Name: "projects.kgraph", Count: 4, LastUpdated: 10},
	}

	roots := BuildDomainTree(rows)
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if roots[0].Name != "projects" || roots[0].Count != 4 {
		t.Errorf("unexpected root: %+v", roots[0])
	}
	if len(roots[0].SubDomains) != 1 || roots[0].SubDomains[0].Name != "projects.kgraph" {
		t.Errorf("unexpected sub-domains: %+v", roots[0].SubDomains)
	}
}

func TestBuildDomainTree_UnassignedBucket(t *testing.T) {
	rows := []DomainInfo{
		{Name: "", Count: 2, LastUpdated: 7},
	}

	roots := BuildDomainTree(rows)
	if len(roots) != 1 {
		t.Fatalf("expected 1 root, got %d", len(roots))
	}
	if roots[0].Name != UnassignedDomain {
		t.Errorf("expected %q bucket, got %q", UnassignedDomain, roots[0].Name)
	}
}
