package services

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/medpub/app-busca-medica/internal/models"
	"go.uber.org/zap"
)

// retractionHeader é o cabeçalho opcional da primeira coluna do CSV
const retractionHeader = "content_id"

// RetractionFilter remove dos candidatos os conteúdos retratados ou despublicados
// listados em um arquivo CSV. O arquivo é recarregado quando sua data de modificação muda.
type RetractionFilter struct {
	csvPath      string
	excludedIDs  map[string]bool
	lastModified time.Time
	mu           sync.RWMutex
	logger       *zap.Logger
}

// NewRetractionFilter cria o filtro. Caminho vazio desativa o filtro.
func NewRetractionFilter(csvPath string, logger *zap.Logger) *RetractionFilter {
	if logger == nil {
		logger = zap.NewNop()
	}
	f := &RetractionFilter{
		csvPath:     csvPath,
		excludedIDs: make(map[string]bool),
		logger:      logger,
	}

	if err := f.load(); err != nil {
		logger.Warn("erro ao carregar conteúdos retratados", zap.String("path", csvPath), zap.Error(err))
	}

	return f
}

func (f *RetractionFilter) load() error {
	if f.csvPath == "" {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	fileInfo, err := os.Stat(f.csvPath)
	if os.IsNotExist(err) {
		f.logger.Debug("arquivo de conteúdos retratados não encontrado", zap.String("path", f.csvPath))
		return nil
	}
	if err != nil {
		return fmt.Errorf("erro ao obter informações do arquivo CSV: %w", err)
	}

	if !fileInfo.ModTime().After(f.lastModified) {
		return nil
	}

	file, err := os.Open(f.csvPath)
	if err != nil {
		return fmt.Errorf("erro ao abrir arquivo CSV: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return fmt.Errorf("erro ao ler arquivo CSV: %w", err)
	}

	excluded := make(map[string]bool, len(records))
	for i, record := range records {
		if len(record) == 0 {
			continue
		}
		id := strings.TrimSpace(record[0])
		if i == 0 && id == retractionHeader {
			continue
		}
		if id != "" {
			excluded[id] = true
		}
	}

	f.excludedIDs = excluded
	f.lastModified = fileInfo.ModTime()

	f.logger.Info("conteúdos retratados carregados",
		zap.Int("count", len(excluded)),
		zap.String("path", f.csvPath),
	)
	return nil
}

// ShouldExclude verifica se um ID deve ser excluído dos resultados
func (f *RetractionFilter) ShouldExclude(id string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.excludedIDs[id]
}

// ExcludedCount retorna o número de IDs carregados
func (f *RetractionFilter) ExcludedCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return len(f.excludedIDs)
}

// Apply recarrega o arquivo se necessário e remove os conteúdos retratados.
// A ordem dos demais candidatos é preservada.
func (f *RetractionFilter) Apply(items []models.ContentItem) []models.ContentItem {
	if f == nil || f.csvPath == "" {
		return items
	}

	if err := f.load(); err != nil {
		f.logger.Warn("erro ao recarregar conteúdos retratados", zap.Error(err))
	}

	if f.ExcludedCount() == 0 {
		return items
	}

	kept := make([]models.ContentItem, 0, len(items))
	for _, item := range items {
		if !f.ShouldExclude(item.ID) {
			kept = append(kept, item)
		}
	}
	return kept
}
