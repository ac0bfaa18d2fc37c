package render

import (
	"testing"

	"github.com/charmbracelet/x/exp/teatest"

	"github.com/zjrosen/arbor/internal/presentation"
)

// Golden files cover the plain (uncolored) renderer only; styled output
// varies with the terminal profile. Run with -update to regenerate:
// go test ./internal/render -update

func goldenTree() presentation.NodeDTO {
	return presentation.NodeDTO{
		Key: ptr("site"), Kind: "group", Value: "Demo Site",
		Children: []presentation.NodeDTO{
			{Key: ptr("home"), Kind: "page", Value: "Home", Children: []presentation.NodeDTO{
				{Kind: "widget", Value: "Status"},
				{Kind: "widget", Value: "Feed"},
			}},
			{Key: ptr("about"), Kind: "page", Value: "About"},
		},
	}
}

func TestRenderer_Tree_Golden(t *testing.T) {
	out := Renderer{}.Render(goldenTree())
	teatest.RequireEqualOutput(t, []byte(out))
}

func TestRenderer_Detail_Golden(t *testing.T) {
	node := presentation.NodeDTO{
		Key: ptr("home"), Kind: "page", Value: "Home",
		Body: "Welcome to the home page.\n",
		Children: []presentation.NodeDTO{
			{Key: ptr("header"), Kind: "fragment"},
			{Kind: "widget", Value: "Status"},
		},
	}

	out := Renderer{}.Detail(node)
	teatest.RequireEqualOutput(t, []byte(out))
}
