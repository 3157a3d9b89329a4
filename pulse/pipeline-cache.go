package pulse

import (
	"fmt"
	"slices"

	"github.com/cogentcore/webgpu/wgpu"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/oliverbestmann/learnwgpu/gfx"
)

const stageCount = 2

// cachedPipeline is a render pipeline together with everything needed
// to bind resources to it.
type cachedPipeline struct {
	Pipeline *wgpu.RenderPipeline

	// explicit layouts for the uniform group and the image groups of both stages
	layouts [1 + stageCount]*wgpu.BindGroupLayout

	// one uniform buffer per declared uniform block
	uniforms     [stageCount][]*wgpu.Buffer
	uniformGroup *wgpu.BindGroup

	// bind groups for image groups of stages without images
	emptyGroups [stageCount]*wgpu.BindGroup

	imageCounts [stageCount]int
	indexFormat wgpu.IndexFormat
}

func (pc *cachedPipeline) GetBindGroupLayout(idx uint32) *wgpu.BindGroupLayout {
	return pc.layouts[idx]
}

func (pc *cachedPipeline) Release() {
	for stage := range pc.emptyGroups {
		if pc.emptyGroups[stage] != nil {
			pc.emptyGroups[stage].Release()
			pc.emptyGroups[stage] = nil
		}
	}

	if pc.uniformGroup != nil {
		pc.uniformGroup.Release()
		pc.uniformGroup = nil
	}

	for stage := range pc.uniforms {
		for _, buf := range pc.uniforms[stage] {
			buf.Release()
		}

		pc.uniforms[stage] = nil
	}

	if pc.Pipeline != nil {
		pc.Pipeline.Release()
		pc.Pipeline = nil
	}

	for idx := range pc.layouts {
		if pc.layouts[idx] != nil {
			pc.layouts[idx].Release()
			pc.layouts[idx] = nil
		}
	}
}

type bindGroupKey struct {
	pipeline gfx.PipelineID
	stage    gfx.ShaderStage
	images   [gfx.MaxStageImages]gfx.ImageID
}

// bindGroupCache keeps the bind groups of image combinations that were
// used in previous frames.
type bindGroupCache struct {
	cache *lru.Cache[bindGroupKey, *wgpu.BindGroup]
}

func newBindGroupCache() *bindGroupCache {
	cache, _ := lru.NewWithEvict[bindGroupKey, *wgpu.BindGroup](64, releaseBindGroupOnEviction)
	return &bindGroupCache{cache: cache}
}

func releaseBindGroupOnEviction(_ bindGroupKey, bindGroup *wgpu.BindGroup) {
	bindGroup.Release()
}

func (c *bindGroupCache) Get(key bindGroupKey, create func() (*wgpu.BindGroup, error)) (*wgpu.BindGroup, error) {
	bindGroup, ok := c.cache.Get(key)
	if ok {
		return bindGroup, nil
	}

	bindGroup, err := create()
	if err != nil {
		return nil, fmt.Errorf("create bind group: %w", err)
	}

	c.cache.Add(key, bindGroup)

	return bindGroup, nil
}

// RemoveIf drops all bind groups whose key matches the predicate.
func (c *bindGroupCache) RemoveIf(pred func(key bindGroupKey) bool) {
	for _, key := range c.cache.Keys() {
		if pred(key) {
			c.cache.Remove(key)
		}
	}
}

func (c *bindGroupCache) Purge() {
	c.cache.Purge()
}

func (key bindGroupKey) usesImage(img gfx.ImageID) bool {
	return slices.Contains(key.images[:], img)
}
