package mahjong_test

import (
	"testing"

	"github.com/kevin-chtw/tw_tai/mahjong"
)

func mustTiles(t *testing.T, names string) []mahjong.Tile {
	t.Helper()
	tiles, err := mahjong.ParseTiles(names)
	if err != nil {
		t.Fatalf("ParseTiles(%q): %v", names, err)
	}
	return tiles
}

func mustTile(t *testing.T, name string) mahjong.Tile {
	t.Helper()
	tiles := mustTiles(t, name)
	if len(tiles) != 1 {
		t.Fatalf("want one tile in %q, got %d", name, len(tiles))
	}
	return tiles[0]
}

func mustHand(t *testing.T, tiles string, groups ...string) *mahjong.Hand {
	t.Helper()
	h, err := mahjong.ParseHand(tiles, groups...)
	if err != nil {
		t.Fatalf("ParseHand(%q, %v): %v", tiles, groups, err)
	}
	return h
}
