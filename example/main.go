package main

import (
	"fmt"
	"log"
	"time"

	"github.com/Jeffrey-Marks/pry"
)

func main() {
	// Build an application-wide base configuration.
	base, err := pry.FromMap(map[string]any{
		"editor": "nano",
		"pager":  true,
		"hooks":  map[string]any{"before_session": []any{"banner"}},
	}, nil)
	if err != nil {
		log.Fatal(err)
	}

	// A session-local node falls back to the base for anything unset.
	session := pry.New(base)
	fmt.Println("editor:", session.Get("editor")) // nano, from base

	// A locally stored falsy value shadows the base.
	session.Set("pager", false)
	fmt.Println("pager:", session.Get("pager")) // false, not base's true

	// Lazy values are recomputed on every read.
	session.Set("now", pry.LazyValue(func() any {
		return time.Now().UnixNano()
	}))
	fmt.Println("now:", session.Get("now"))
	fmt.Println("now:", session.Get("now")) // different result

	// The hooks collection is copied on first read, so mutating it does
	// not touch the base copy.
	hooks := session.Get("hooks").(map[string]any)
	hooks["after_session"] = []any{"farewell"}
	fmt.Println("base hooks:", base.Get("hooks"))
	fmt.Println("session hooks:", session.Get("hooks"))

	// Merge anything map-like or convertible to a map.
	if err := session.Merge(map[string]any{"color": true}); err != nil {
		log.Fatal(err)
	}

	// Forgetting a key restores fallback to the base.
	session.Forget("pager")
	fmt.Println("pager after forget:", session.Get("pager")) // true again

	// Reserved keys can never be assigned.
	if err := session.Set("default", "nope"); err != nil {
		fmt.Println("rejected:", err)
	}

	fmt.Println("local keys:", session.Keys())
	fmt.Println("resolved view:", session.Resolved())
}
