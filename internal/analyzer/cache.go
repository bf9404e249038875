package analyzer

import (
	"fmt"
	"hash/fnv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/elev8tion/phoenix/internal/source"
)

// declCache memoizes per-file class declarations. The model, screen, and
// widget analyzers scan overlapping file sets; caching by content hash means
// each file is tokenized once per run instead of once per pass.
type declCache struct {
	cache *lru.Cache[string, []ClassDecl]
}

const declCacheSize = 512

func newDeclCache() *declCache {
	cache, err := lru.New[string, []ClassDecl](declCacheSize)
	if err != nil {
		// Only reachable with a non-positive size constant.
		panic(fmt.Sprintf("analyzer: creating decl cache: %v", err))
	}
	return &declCache{cache: cache}
}

// declsFor returns the class declarations of a file, computing them on miss.
func (c *declCache) declsFor(file source.SourceFile) []ClassDecl {
	key := cacheKey(file)
	if decls, ok := c.cache.Get(key); ok {
		return decls
	}
	decls := FindClassDeclarations(file.Content)
	c.cache.Add(key, decls)
	return decls
}

func cacheKey(file source.SourceFile) string {
	h := fnv.New64a()
	h.Write([]byte(file.Content))
	return fmt.Sprintf("%s:%x", file.Path, h.Sum64())
}
