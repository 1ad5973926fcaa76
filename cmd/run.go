package cmd

import (
	"log"
	"runtime"

	"shaderbin/internal/config"
	"shaderbin/internal/progbin"
	"shaderbin/internal/scene"
	"shaderbin/internal/shaders"
	"shaderbin/pkg/window"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the demo, loading the program from the binary cache when possible",
	Run:   Run,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runtime.LockOSThread()
}

func Run(cmd *cobra.Command, args []string) {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal("Failed to load settings:", err)
	}

	win, err := window.New(settings.WindowWidth, settings.WindowHeight, "shaderbin")
	if err != nil {
		log.Fatal("Failed to create window:", err)
	}
	defer win.Destroy()

	if err := gl.Init(); err != nil {
		log.Fatal("Failed to initialize OpenGL:", err)
	}

	log.Printf("OpenGL Version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	log.Printf("GLSL Version: %s", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
	log.Printf("Vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	log.Printf("Renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))

	cachePath, err := settings.ResolveCachePath()
	if err != nil {
		log.Fatal("Failed to resolve cache path:", err)
	}

	cache := progbin.New(progbin.GLDriver{}, cachePath)
	program, err := cache.GetOrCreate(shaders.NewProgram)
	if err != nil {
		log.Fatal("Failed to create shader program:", err)
	}

	s := scene.New()

	for !win.ShouldClose() {
		win.PollEvents()

		width, height := win.GetSize()
		gl.Viewport(0, 0, int32(width), int32(height))

		s.Draw(program, win.Time())
		win.SwapBuffers()
	}

	s.Release()
	gl.DeleteProgram(program)
}
