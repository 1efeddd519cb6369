package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"price-compare/config"
	"price-compare/internal/dto"
	"price-compare/pkg/logger"
	"strconv"
	"strings"
)

var ErrInvalidScriptOutput = errors.New("similarity script produced no JSON output")

// SimilaritySearcher finds catalog images similar to a product's image.
type SimilaritySearcher interface {
	SearchSimilar(ctx context.Context, productID string, top int) (*dto.SimilarityScriptOutput, error)
}

type scriptSimilaritySearcher struct {
	cfg    config.Similarity
	logger *logger.Logger
}

func NewSimilaritySearcher(cfg config.Similarity, log *logger.Logger) SimilaritySearcher {
	return &scriptSimilaritySearcher{cfg: cfg, logger: log}
}

// SearchSimilar runs `<python> <script> --id <productID> --top <top>` and decodes its stdout.
func (s *scriptSimilaritySearcher) SearchSimilar(ctx context.Context, productID string, top int) (*dto.SimilarityScriptOutput, error) {
	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, s.cfg.PythonPath, s.cfg.ScriptPath, "--id", productID, "--top", strconv.Itoa(top))
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()
	if stderr.Len() > 0 {
		s.logger.InfoContext(ctx, "Similarity script stderr",
			logger.StringField("product_id", productID),
			logger.StringField("stderr", strings.TrimSpace(stderr.String())),
		)
	}
	if runErr != nil {
		// the script exits non-zero after printing its own failure document
		if output, err := ParseSimilarityOutput(stdout.Bytes()); err == nil {
			s.logger.WarnContext(ctx, "Similarity script exited with error",
				logger.StringField("product_id", productID),
				logger.StringField("script_error", output.Error),
				logger.ErrorField(runErr),
			)
			return output, nil
		}
		s.logger.ErrorContext(ctx, "similarity script failed", logger.StringField("product_id", productID), logger.ErrorField(runErr))
		return nil, fmt.Errorf("similarity script failed: %w", runErr)
	}

	return ParseSimilarityOutput(stdout.Bytes())
}

// ParseSimilarityOutput drops any noise printed before the first '{' and decodes the rest.
func ParseSimilarityOutput(raw []byte) (*dto.SimilarityScriptOutput, error) {
	out := strings.TrimSpace(string(raw))
	if idx := strings.Index(out, "{"); idx >= 0 {
		out = out[idx:]
	} else {
		return nil, ErrInvalidScriptOutput
	}

	var result dto.SimilarityScriptOutput
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScriptOutput, err)
	}
	return &result, nil
}
