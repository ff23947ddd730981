package services

import (
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"time"
)

// 亮度/对比度增强参数，对应 out = alpha*in + beta 并截断到 [0,255]
const (
	captureAlpha = 1.2
	captureBeta  = 30
)

// FrameSource 摄像头帧来源
// Read 返回一帧和是否成功，设备异常时返回 false
type FrameSource interface {
	Open() error
	Read() (image.Image, bool)
	Close()
}

// EmotionClassifier 外部表情分类器边界
type EmotionClassifier interface {
	Analyze(ctx context.Context, imgPath string) (string, error)
}

// CaptureService 情绪捕获流水线：取帧、增强、落盘、送分类器
type CaptureService struct {
	source     FrameSource
	classifier EmotionClassifier
	warmup     time.Duration
	maxReads   int
}

func NewCaptureService(source FrameSource, classifier EmotionClassifier, warmup time.Duration, maxReads int) *CaptureService {
	return &CaptureService{
		source:     source,
		classifier: classifier,
		warmup:     warmup,
		maxReads:   maxReads,
	}
}

// CaptureFrame 打开设备，预热后在重试上限内取一帧可解码画面
// 无论成败都在返回前释放设备；取不到帧返回 ErrNoCamera
func (s *CaptureService) CaptureFrame() (image.Image, error) {
	if err := s.source.Open(); err != nil {
		return nil, ErrNoCamera
	}
	defer s.source.Close()

	// 摄像头预热
	time.Sleep(s.warmup)

	for i := 0; i < s.maxReads; i++ {
		frame, ok := s.source.Read()
		if ok && frame != nil {
			return frame, nil
		}
	}
	return nil, ErrNoCamera
}

// AdjustBrightness 对每个像素做线性增强并截断到合法范围
func AdjustBrightness(img image.Image, alpha float64, beta float64) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			out.SetRGBA(x, y, color.RGBA{
				R: scaleClamp(r>>8, alpha, beta),
				G: scaleClamp(g>>8, alpha, beta),
				B: scaleClamp(b>>8, alpha, beta),
				A: uint8(a >> 8),
			})
		}
	}
	return out
}

func scaleClamp(v uint32, alpha float64, beta float64) uint8 {
	scaled := alpha*float64(v) + beta
	if scaled > 255 {
		return 255
	}
	if scaled < 0 {
		return 0
	}
	return uint8(scaled)
}

// saveFrame 把增强后的画面写成临时JPEG，分类器按文件路径取图
func saveFrame(img image.Image) (string, error) {
	path := filepath.Join(os.TempDir(), "captured.jpg")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: 90}); err != nil {
		return "", err
	}
	return path, nil
}

// CaptureAndClassify 完整执行一次捕获并返回主导情绪标签
// 分类失败不重试，由用户重新发起
func (s *CaptureService) CaptureAndClassify(ctx context.Context) (string, error) {
	frame, err := s.CaptureFrame()
	if err != nil {
		return "", err
	}

	enhanced := AdjustBrightness(frame, captureAlpha, captureBeta)

	path, err := saveFrame(enhanced)
	if err != nil {
		return "", err
	}

	return s.classifier.Analyze(ctx, path)
}
