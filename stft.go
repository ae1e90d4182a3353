package algofft

// STFT computes a short-time Fourier transform over a stream of real
// samples: each time at least chunkSize samples are buffered, it
// windows and transforms one chunk, then advances the buffer by
// chunkStride samples.
type STFT struct {
	chunkSize   int
	chunkStride int
	window      Window
	fft         *FFT[complex128]

	buf []float64
}

// NewSTFT builds an STFT with the given chunk size and stride. A nil
// window disables windowing (rectangular).
func NewSTFT(chunkSize, chunkStride int, window Window) (*STFT, error) {
	if window != nil && len(window) != chunkSize {
		return nil, wrapLengthMismatch(len(window), chunkSize)
	}
	fft, err := MakeFFT[complex128](chunkSize)
	if err != nil {
		return nil, err
	}
	return &STFT{
		chunkSize:   chunkSize,
		chunkStride: chunkStride,
		window:      window,
		fft:         fft,
	}, nil
}

// Stream appends samples to the internal buffer and invokes onChunk
// once per complete chunkSize-length window that becomes available,
// advancing by chunkStride samples each time. The spectrum passed to
// onChunk is reused across calls; callers that need to keep it must
// copy it.
func (s *STFT) Stream(samples []float64, onChunk func(spectrum []complex128)) error {
	s.buf = append(s.buf, samples...)
	spectrum := make([]complex128, s.chunkSize)
	for len(s.buf) >= s.chunkSize {
		copy(spectrum, FromReal[complex128](s.buf[:s.chunkSize]))
		if s.window != nil {
			if err := s.window.Apply(spectrum); err != nil {
				return err
			}
		}
		if err := s.fft.InPlaceForward(spectrum); err != nil {
			return err
		}
		onChunk(spectrum)
		s.buf = s.buf[s.chunkStride:]
	}
	return nil
}

// Flush pads the remaining buffered samples with zeros out to the next
// full chunk and processes it through onChunk one last time, per the
// same padded-length convention a one-shot call over a fixed-length
// signal of length n would use: padn = ceil((n-chunkSize)/chunkStride)
// * chunkStride + chunkSize. If the buffered tail is no larger than the
// chunkSize-chunkStride overlap every processed chunk already leaves
// behind, there is no genuinely unconsumed data and Flush is a no-op.
func (s *STFT) Flush(onChunk func(spectrum []complex128)) error {
	if len(s.buf) <= s.chunkSize-s.chunkStride {
		return nil
	}
	padded := make([]float64, s.chunkSize)
	return s.Stream(padded[:s.chunkSize-len(s.buf)], onChunk)
}
