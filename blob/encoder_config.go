package blob

import (
	"github.com/arloliu/fibcode/compress"
	"github.com/arloliu/fibcode/endian"
	"github.com/arloliu/fibcode/errs"
	"github.com/arloliu/fibcode/format"
	"github.com/arloliu/fibcode/internal/options"
	"github.com/arloliu/fibcode/section"
	"go.uber.org/zap"
)

// EncoderConfig holds the header settings, payload codec and logger of an Encoder.
type EncoderConfig struct {
	header *section.Header
	codec  compress.Codec
	engine endian.EndianEngine
	logger *zap.Logger
}

func newEncoderConfig(width format.Width) *EncoderConfig {
	header := section.NewHeader(width)

	return &EncoderConfig{
		header: header,
		engine: header.Flag.GetEndianEngine(),
		logger: zap.NewNop(),
	}
}

// setCompression sets the payload compression type.
func (c *EncoderConfig) setCompression(comp format.CompressionType) error {
	if !comp.Valid() {
		return errs.ErrInvalidCompression
	}
	c.header.Flag.Compression = comp

	return nil
}

// setEndianness sets the byte order of the header fields.
func (c *EncoderConfig) setEndianness(bigEndian bool) {
	if bigEndian {
		c.header.Flag.WithBigEndian()
	} else {
		c.header.Flag.WithLittleEndian()
	}
	c.engine = c.header.Flag.GetEndianEngine()
}

// setCodec resolves the payload codec from the header.
func (c *EncoderConfig) setCodec() error {
	codec, err := compress.CreateCodec(c.header.Flag.Compression, "payload")
	if err != nil {
		return err
	}
	c.codec = codec

	return nil
}

// EncoderOption represents a functional option for configuring an Encoder.
type EncoderOption = options.Option[*EncoderConfig]

// WithCompression sets the compression applied to the packed payload.
// The default is format.CompressionNone.
func WithCompression(comp format.CompressionType) EncoderOption {
	return options.New(func(c *EncoderConfig) error {
		return c.setCompression(comp)
	})
}

// WithLittleEndian writes the header fields little-endian. It is the default option.
func WithLittleEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianness(false)
	})
}

// WithBigEndian writes the header fields big-endian.
// It rarely needs to be used unless interoperability with big-endian systems is required.
func WithBigEndian() EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		c.setEndianness(true)
	})
}

// WithLogger sets the logger of the encoder. A nil logger disables logging.
func WithLogger(logger *zap.Logger) EncoderOption {
	return options.NoError(func(c *EncoderConfig) {
		if logger == nil {
			logger = zap.NewNop()
		}
		c.logger = logger
	})
}
