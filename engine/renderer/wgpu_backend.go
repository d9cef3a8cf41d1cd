package renderer

import (
	"fmt"
	"log"
	"math"
	"runtime"
	"time"

	"github.com/Carmen-Shannon/pixel-theater/common"
	"github.com/Carmen-Shannon/pixel-theater/engine/color"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// ledQuadShader billboards one quad per LED instance and shades it as a
// soft-edged disc.
const ledQuadShader = `
struct Uniforms {
    view_proj: mat4x4<f32>,
    camera_right: vec4<f32>,
    camera_up: vec4<f32>,
};
@group(0) @binding(0) var<uniform> uniforms: Uniforms;

struct VertexOut {
    @builtin(position) position: vec4<f32>,
    @location(0) color: vec3<f32>,
    @location(1) corner: vec2<f32>,
};

@vertex
fn vs_main(
    @location(0) corner: vec2<f32>,
    @location(1) center: vec3<f32>,
    @location(2) led_color: vec3<f32>,
) -> VertexOut {
    var out: VertexOut;
    let world = center
        + uniforms.camera_right.xyz * corner.x
        + uniforms.camera_up.xyz * corner.y;
    out.position = uniforms.view_proj * vec4<f32>(world, 1.0);
    out.color = led_color;
    out.corner = corner;
    return out;
}

@fragment
fn fs_main(in: VertexOut) -> @location(0) vec4<f32> {
    let r = length(in.corner);
    if (r > 1.0) {
        discard;
    }
    let falloff = 1.0 - smoothstep(0.6, 1.0, r);
    return vec4<f32>(in.color * falloff, 1.0);
}
`

// ledInstance is the per-LED instance record uploaded every frame.
type ledInstance struct {
	X, Y, Z float32
	R, G, B float32
}

// uniformData is the per-frame uniform block.
type uniformData struct {
	ViewProj    [16]float32
	CameraRight [4]float32
	CameraUp    [4]float32
}

// wgpuRenderer is the WebGPU implementation of Renderer.
type wgpuRenderer struct {
	device *wgpu.Device
	queue  *wgpu.Queue

	instance *wgpu.Instance
	adapter  *wgpu.Adapter
	surface  *wgpu.Surface

	surfaceFormat    wgpu.TextureFormat
	depthTextureView *wgpu.TextureView
	pipeline         *wgpu.RenderPipeline

	quadBuffer     *wgpu.Buffer
	instanceBuffer *wgpu.Buffer
	uniformBuffer  *wgpu.Buffer
	bindGroup      *wgpu.BindGroup

	camera orbitCamera

	// positions holds one world-space center per LED, in LED index order.
	positions []mgl32.Vec3

	// ledRadius is the quad half-size in model units.
	ledRadius float32

	sphereRadius float32

	width, height int

	lastFrame time.Time
	fps       float32
	debugMode bool
	frames    uint64
}

// NewWGPURenderer creates the point-cloud renderer over a window surface.
//
// Parameters:
//   - surfaceDescriptor: the window's surface descriptor
//   - width, height: framebuffer size in pixels
//   - positions: world-space LED centers in LED index order
//   - sphereRadius: model bounding-sphere radius (drives zoom presets)
//
// Returns:
//   - Renderer: the renderer
//   - error: error if the GPU device cannot be initialized
func NewWGPURenderer(surfaceDescriptor *wgpu.SurfaceDescriptor, width, height int, positions []mgl32.Vec3, sphereRadius float32) (Renderer, error) {
	runtime.LockOSThread()

	r := &wgpuRenderer{
		instance:     wgpu.CreateInstance(nil),
		positions:    positions,
		sphereRadius: sphereRadius,
		ledRadius:    sphereRadius * 0.015,
		width:        width,
		height:       height,
		lastFrame:    time.Now(),
	}
	if r.ledRadius <= 0 {
		r.ledRadius = 1.0
	}
	r.camera.setZoomLevel(1, sphereRadius)

	r.surface = r.instance.CreateSurface(surfaceDescriptor)

	adapter, err := r.instance.RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: r.surface,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request adapter: %v", err)
	}
	r.adapter = adapter

	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label: "Simulator Device",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to request device: %v", err)
	}
	r.device = device
	r.queue = device.GetQueue()

	r.Resize(width, height)

	if err := r.createPipeline(); err != nil {
		return nil, err
	}
	if err := r.createBuffers(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *wgpuRenderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width = width
	r.height = height

	capabilities := r.surface.GetCapabilities(r.adapter)
	r.surfaceFormat = capabilities.Formats[0]

	r.surface.Configure(r.adapter, r.device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      r.surfaceFormat,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   capabilities.AlphaModes[0],
	})

	if r.depthTextureView != nil {
		r.depthTextureView.Release()
		r.depthTextureView = nil
	}
	depthTexture, err := r.device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "Depth Texture",
		Size: wgpu.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        wgpu.TextureFormatDepth24Plus,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if err != nil {
		log.Printf("[ERROR] failed to create depth texture: %v", err)
		return
	}
	view, err := depthTexture.CreateView(nil)
	if err != nil {
		log.Printf("[ERROR] failed to create depth view: %v", err)
		return
	}
	r.depthTextureView = view
}

func (r *wgpuRenderer) createPipeline() error {
	module, err := r.device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label: "LED Quad Shader",
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
			Code: ledQuadShader,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create shader module: %v", err)
	}

	bindGroupLayout, err := r.device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: "Uniform Layout",
		Entries: []wgpu.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: wgpu.ShaderStageVertex,
				Buffer: wgpu.BufferBindingLayout{
					Type: wgpu.BufferBindingTypeUniform,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create bind group layout: %v", err)
	}

	layout, err := r.device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            "Pipeline Layout",
		BindGroupLayouts: []*wgpu.BindGroupLayout{bindGroupLayout},
	})
	if err != nil {
		return fmt.Errorf("failed to create pipeline layout: %v", err)
	}

	pipeline, err := r.device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  "LED Pipeline",
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: "vs_main",
			Buffers: []wgpu.VertexBufferLayout{
				{
					ArrayStride: 8,
					StepMode:    wgpu.VertexStepModeVertex,
					Attributes: []wgpu.VertexAttribute{
						{ShaderLocation: 0, Offset: 0, Format: wgpu.VertexFormatFloat32x2},
					},
				},
				{
					ArrayStride: 24,
					StepMode:    wgpu.VertexStepModeInstance,
					Attributes: []wgpu.VertexAttribute{
						{ShaderLocation: 1, Offset: 0, Format: wgpu.VertexFormatFloat32x3},
						{ShaderLocation: 2, Offset: 12, Format: wgpu.VertexFormatFloat32x3},
					},
				},
			},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: "fs_main",
			Targets: []wgpu.ColorTargetState{
				{
					Format:    r.surfaceFormat,
					WriteMask: wgpu.ColorWriteMaskAll,
				},
			},
		},
		Primitive: wgpu.PrimitiveState{
			Topology: wgpu.PrimitiveTopologyTriangleList,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
		DepthStencil: &wgpu.DepthStencilState{
			Format:            wgpu.TextureFormatDepth24Plus,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
			StencilBack: wgpu.StencilFaceState{
				Compare: wgpu.CompareFunctionAlways,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create render pipeline: %v", err)
	}
	r.pipeline = pipeline

	uniformBuffer, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Uniforms",
		Size:  uint64(len(common.StructToBytes(&uniformData{}))),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create uniform buffer: %v", err)
	}
	r.uniformBuffer = uniformBuffer

	bindGroup, err := r.device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  "Uniform Bind Group",
		Layout: bindGroupLayout,
		Entries: []wgpu.BindGroupEntry{
			{
				Binding: 0,
				Buffer:  uniformBuffer,
				Size:    wgpu.WholeSize,
			},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create bind group: %v", err)
	}
	r.bindGroup = bindGroup
	return nil
}

func (r *wgpuRenderer) createBuffers() error {
	s := r.ledRadius
	quad := []float32{
		-s, -s, s, -s, s, s,
		-s, -s, s, s, -s, s,
	}
	quadBuffer, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "Quad Corners",
		Size:  uint64(len(common.SliceToBytes(quad))),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create quad buffer: %v", err)
	}
	r.quadBuffer = quadBuffer
	r.queue.WriteBuffer(quadBuffer, 0, common.SliceToBytes(quad))

	instances := make([]ledInstance, len(r.positions))
	instanceBuffer, err := r.device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: "LED Instances",
		Size:  uint64(len(common.SliceToBytes(instances))),
		Usage: wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("failed to create instance buffer: %v", err)
	}
	r.instanceBuffer = instanceBuffer
	return nil
}

func (r *wgpuRenderer) Frame(leds []color.CRGB, brightness uint8) error {
	r.camera.tick()

	// Stage per-LED instance data: position plus brightness-scaled color.
	count := len(r.positions)
	if len(leds) < count {
		count = len(leds)
	}
	instances := make([]ledInstance, count)
	scale := float32(brightness) / 255.0
	for i := 0; i < count; i++ {
		c := leds[i]
		instances[i] = ledInstance{
			X: r.positions[i].X(),
			Y: r.positions[i].Y(),
			Z: r.positions[i].Z(),
			R: float32(c.R) / 255.0 * scale,
			G: float32(c.G) / 255.0 * scale,
			B: float32(c.B) / 255.0 * scale,
		}
	}
	r.queue.WriteBuffer(r.instanceBuffer, 0, common.SliceToBytes(instances))

	r.writeUniforms()

	surfaceTexture, err := r.surface.GetCurrentTexture()
	if err != nil {
		return fmt.Errorf("failed to acquire surface texture: %v", err)
	}
	view, err := surfaceTexture.CreateView(nil)
	if err != nil {
		surfaceTexture.Release()
		return fmt.Errorf("failed to create surface view: %v", err)
	}

	encoder, err := r.device.CreateCommandEncoder(nil)
	if err != nil {
		view.Release()
		surfaceTexture.Release()
		return fmt.Errorf("failed to create command encoder: %v", err)
	}

	pass := encoder.BeginRenderPass(&wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{
			{
				View:       view,
				LoadOp:     wgpu.LoadOpClear,
				StoreOp:    wgpu.StoreOpStore,
				ClearValue: wgpu.Color{R: 0.02, G: 0.02, B: 0.03, A: 1.0},
			},
		},
		DepthStencilAttachment: &wgpu.RenderPassDepthStencilAttachment{
			View:            r.depthTextureView,
			DepthClearValue: 1.0,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
		},
	})
	pass.SetPipeline(r.pipeline)
	pass.SetBindGroup(0, r.bindGroup, nil)
	pass.SetVertexBuffer(0, r.quadBuffer, 0, wgpu.WholeSize)
	pass.SetVertexBuffer(1, r.instanceBuffer, 0, wgpu.WholeSize)
	pass.Draw(6, uint32(count), 0, 0)
	pass.End()

	commandBuffer, err := encoder.Finish(nil)
	if err != nil {
		encoder.Release()
		view.Release()
		surfaceTexture.Release()
		return fmt.Errorf("failed to finish command encoder: %v", err)
	}
	r.queue.Submit(commandBuffer)
	commandBuffer.Release()
	encoder.Release()

	r.surface.Present()
	view.Release()
	surfaceTexture.Release()

	r.updateFPS()
	return nil
}

// writeUniforms rebuilds the view-projection matrix and billboard axes from
// the orbit camera and uploads them.
func (r *wgpuRenderer) writeUniforms() {
	aspect := float32(r.width) / float32(r.height)
	eye := r.camera.eye()

	view := mgl32.LookAtV(eye, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(45), aspect, 0.1, r.sphereRadius*20)
	viewProj := proj.Mul4(view)

	// Billboard axes are the camera's right/up vectors: rows of the view
	// rotation.
	right := mgl32.Vec3{view.At(0, 0), view.At(0, 1), view.At(0, 2)}
	up := mgl32.Vec3{view.At(1, 0), view.At(1, 1), view.At(1, 2)}

	u := uniformData{
		CameraRight: [4]float32{right.X(), right.Y(), right.Z(), 0},
		CameraUp:    [4]float32{up.X(), up.Y(), up.Z(), 0},
	}
	copy(u.ViewProj[:], viewProj[:])
	r.queue.WriteBuffer(r.uniformBuffer, 0, common.StructToBytes(&u))
}

func (r *wgpuRenderer) updateFPS() {
	now := time.Now()
	dt := now.Sub(r.lastFrame).Seconds()
	r.lastFrame = now
	if dt > 0 {
		instant := float32(1.0 / dt)
		if r.fps == 0 {
			r.fps = instant
		} else {
			r.fps = r.fps*0.9 + instant*0.1
		}
	}
	r.frames++
	if r.debugMode && r.frames%120 == 0 {
		log.Printf("[INFO] simulator fps=%.1f yaw=%.2f pitch=%.2f",
			r.fps, r.camera.yaw, r.camera.pitch)
	}
}

func (r *wgpuRenderer) Rotate(dx, dy float32) { r.camera.rotate(dx, dy) }

func (r *wgpuRenderer) ResetRotation() { r.camera.reset() }

func (r *wgpuRenderer) SetAutoRotation(enabled bool, speed float32) {
	r.camera.autoRotate = enabled
	if speed != 0 {
		r.camera.autoSpeed = speed
	} else if r.camera.autoSpeed == 0 {
		r.camera.autoSpeed = float32(math.Pi) / 600.0
	}
}

func (r *wgpuRenderer) SetZoomLevel(level int) {
	r.camera.setZoomLevel(level, r.sphereRadius)
}

func (r *wgpuRenderer) FPS() float32 { return r.fps }

func (r *wgpuRenderer) SetDebugMode(enabled bool) { r.debugMode = enabled }

func (r *wgpuRenderer) Close() {
	if r.depthTextureView != nil {
		r.depthTextureView.Release()
	}
	if r.device != nil {
		r.device.Release()
	}
}
