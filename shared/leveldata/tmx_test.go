package leveldata

import (
	"fmt"
	"image/color"
	"strings"
	"testing"
	"testing/fstest"
)

const roomTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="32" tileheight="32" infinite="0" nextlayerid="5" nextobjectid="4">
 <tileset firstgid="1" name="tiles" tilewidth="32" tileheight="32" tilecount="2" columns="2">
  <image source="tiles.png" width="64" height="32"/>
  <tile id="1">
   <properties>
    <property name="type" value="spike"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="solid" width="4" height="3">
  <properties>
   <property name="background" value="#102030"/>
  </properties>
  <data encoding="csv">
0,0,0,0,
0,0,2,0,
1,1,1,1
</data>
 </layer>
 <layer id="2" name="decor" width="4" height="3">
  <data encoding="csv">
0,1,0,0,
0,0,0,0,
0,0,0,0
</data>
 </layer>
 <objectgroup id="3" name="offgrid">
  <object id="1" class="spike" x="40" y="8" width="32" height="32">
   <properties>
    <property name="flip_v" type="bool" value="true"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="4" name="player">
  <object id="3" x="16" y="50" width="11" height="21"/>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"levels/stage02.tmx": {Data: []byte(roomTMX)}}

	lvl, err := Load(fsys, "levels/stage02.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lvl.TileSize != 32 || lvl.Name != "stage02" {
		t.Fatalf("header = %d %q", lvl.TileSize, lvl.Name)
	}
	if lvl.Background != (color.RGBA{0x10, 0x20, 0x30, 255}) {
		t.Fatalf("Background = %v", lvl.Background)
	}
	if !lvl.HasSpawn || lvl.SpawnX != 16 || lvl.SpawnY != 50 {
		t.Fatalf("spawn = (%v, %v)", lvl.SpawnX, lvl.SpawnY)
	}

	if len(lvl.Solid) != 5 {
		t.Fatalf("solid tiles = %d, want 5", len(lvl.Solid))
	}
	floor, ok := lvl.Get(Loc{3, 2}, true)
	if !ok || floor.Type != "block" || floor.Variant != 0 {
		t.Fatalf("floor tile = %+v", floor)
	}
	spike, ok := lvl.Get(Loc{2, 1}, true)
	if !ok || spike.Type != "spike" {
		t.Fatalf("spike tile = %+v", spike)
	}
	if _, ok := lvl.Get(Loc{1, 0}, false); !ok || len(lvl.Decor) != 1 {
		t.Fatalf("decor grid = %v", lvl.Decor)
	}

	if len(lvl.Offgrid) != 1 {
		t.Fatalf("offgrid = %v", lvl.Offgrid)
	}
	if off := lvl.Offgrid[0]; off.Type != "spike" || off.X != 40 || off.Y != 8 || !off.FlipV {
		t.Fatalf("offgrid tile = %+v", off)
	}

	// The same room must answer neighbourhood queries like a JSON room.
	if rects := lvl.RectsNear(48, 80); len(rects) != 4 {
		t.Fatalf("RectsNear = %v, want floor row plus spike", rects)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#ff8000", color.RGBA{255, 128, 0, 255}, true},
		{"#80ff8000", color.RGBA{255, 128, 0, 255}, true},
		{"c8ffff", color.RGBA{200, 255, 255, 255}, true},
		{"#fff", color.RGBA{255, 255, 255, 255}, true},
		{"#12345", color.RGBA{}, false},
		{"#gg0000", color.RGBA{}, false},
	}
	for _, tt := range tests {
		got, err := parseHexColor(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Errorf("parseHexColor(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestLoadTMXRoomBackground(t *testing.T) {
	const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="32" tileheight="32" infinite="0"%s>
%s <tileset firstgid="1" name="tiles" tilewidth="32" tileheight="32" tilecount="1" columns="1">
  <image source="tiles.png" width="32" height="32"/>
 </tileset>
 <layer id="1" name="solid" width="2" height="1">
%s  <data encoding="csv">
1,0
</data>
 </layer>
 <objectgroup id="2" name="player">
  <object id="1" x="40" y="0" width="11" height="21"/>
 </objectgroup>
</map>
`
	mapProps := ` <properties>
  <property name="background" value="#102030"/>
  <property name="room_to" value="stage02"/>
 </properties>
`
	layerProps := `  <properties>
   <property name="background" value="#405060"/>
  </properties>
`

	tests := []struct {
		name     string
		attr     string
		mapProps string
		layer    string
		want     color.RGBA
		roomTo   string
	}{
		{"default", "", "", "", DefaultBackground, ""},
		{"map colour", ` backgroundcolor="#0a0b0c"`, "", "", color.RGBA{0x0a, 0x0b, 0x0c, 255}, ""},
		{"map property", ` backgroundcolor="#0a0b0c"`, mapProps, "", color.RGBA{0x10, 0x20, 0x30, 255}, "stage02"},
		{"layer overrides map", "", mapProps, layerProps, color.RGBA{0x40, 0x50, 0x60, 255}, "stage02"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := fmt.Sprintf(header, tt.attr, tt.mapProps, tt.layer)
			fsys := fstest.MapFS{"room.tmx": {Data: []byte(data)}}
			lvl, err := LoadTMX(fsys, "room.tmx")
			if err != nil {
				t.Fatalf("LoadTMX: %v", err)
			}
			if lvl.Background != tt.want {
				t.Fatalf("Background = %v, want %v", lvl.Background, tt.want)
			}
			if lvl.RoomTo != tt.roomTo {
				t.Fatalf("RoomTo = %q, want %q", lvl.RoomTo, tt.roomTo)
			}
		})
	}
}

func TestLoadTMXBadBackground(t *testing.T) {
	data := strings.Replace(roomTMX, `value="#102030"`, `value="#nothex"`, 1)
	fsys := fstest.MapFS{"room.tmx": {Data: []byte(data)}}
	if _, err := LoadTMX(fsys, "room.tmx"); err == nil {
		t.Fatalf("expected a colour error")
	}
}
