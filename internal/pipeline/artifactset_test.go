package pipeline

import "testing"

func TestArtifactSetOrder(t *testing.T) {
	set := NewArtifactSet()
	set.Set("Summary", "X")
	set.Set("Key Points", "Y")
	set.Set("Action Items", "Z")

	artifacts := set.Artifacts()
	want := []string{"Summary", "Key Points", "Action Items"}
	if len(artifacts) != len(want) {
		t.Fatalf("len = %d, want %d", len(artifacts), len(want))
	}
	for i, h := range want {
		if artifacts[i].Heading != h {
			t.Errorf("artifact[%d] heading = %q, want %q", i, artifacts[i].Heading, h)
		}
	}
}

func TestArtifactSetOverwriteKeepsPosition(t *testing.T) {
	set := NewArtifactSet()
	set.Set("Summary", "first")
	set.Set("Key Points", "Y")
	set.Set("Summary", "second")

	if set.Len() != 2 {
		t.Fatalf("len = %d, want 2", set.Len())
	}

	artifacts := set.Artifacts()
	if artifacts[0].Heading != "Summary" || artifacts[0].Body != "second" {
		t.Errorf("artifact[0] = %+v, want Summary with latest body", artifacts[0])
	}
	if artifacts[1].Heading != "Key Points" {
		t.Errorf("artifact[1] heading = %q", artifacts[1].Heading)
	}
}

func TestArtifactSetGet(t *testing.T) {
	set := NewArtifactSet()
	set.Set("Summary", "X")

	if body, ok := set.Get("Summary"); !ok || body != "X" {
		t.Errorf("Get(Summary) = %q, %v", body, ok)
	}
	if _, ok := set.Get("Sentiment"); ok {
		t.Error("Get() found a heading that was never set")
	}
}
