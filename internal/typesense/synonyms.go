package typesense

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/medpub/app-busca-medica/internal/search/vocabulary"
	"github.com/medpub/app-busca-medica/internal/utils"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"go.uber.org/zap"
)

var nonIDChars = regexp.MustCompile(`[^a-z0-9]+`)

// SyncSynonyms publica os sinônimos e siglas do vocabulário na collection de conteúdo.
// Falhas individuais são registradas e ignoradas; retorna quantos grupos foram gravados.
func (c *Client) SyncSynonyms(ctx context.Context, vocab *vocabulary.Vocabulary) (int, error) {
	if vocab == nil {
		vocab = vocabulary.Default()
	}

	groups := synonymGroups(vocab)
	loaded := 0
	for i, synonyms := range groups.sets {
		if err := ctx.Err(); err != nil {
			return loaded, err
		}
		if err := c.upsertSynonym(ctx, groups.ids[i], synonyms); err != nil {
			c.logger.Warn("erro ao gravar sinônimo",
				zap.String("synonym_id", groups.ids[i]),
				zap.Error(err),
			)
			continue
		}
		loaded++
	}

	c.logger.Info("sinônimos sincronizados",
		zap.String("collection", c.content.Name),
		zap.Int("loaded", loaded),
		zap.Int("total", len(groups.sets)),
	)
	return loaded, nil
}

func (c *Client) upsertSynonym(ctx context.Context, id string, synonyms []string) error {
	schema := &api.SearchSynonymSchema{
		Synonyms: synonyms,
	}

	_, err := c.client.Collection(c.content.Name).Synonyms().Upsert(ctx, id, schema)
	if err != nil {
		return fmt.Errorf("erro ao upsert sinônimo %s: %w", id, err)
	}
	return nil
}

// synonymSets mantém os grupos na ordem do vocabulário
type synonymSets struct {
	ids  []string
	sets [][]string
}

// synonymGroups converte o vocabulário em grupos multi-direcionais do Typesense.
// Cada sigla vira um grupo {sigla, forma por extenso}.
func synonymGroups(vocab *vocabulary.Vocabulary) synonymSets {
	var out synonymSets

	for _, g := range vocab.Synonyms() {
		out.ids = append(out.ids, "syn_"+sanitizeID(g.Term))
		out.sets = append(out.sets, append([]string{g.Term}, g.Synonyms...))
	}
	for _, a := range vocab.Abbreviations() {
		out.ids = append(out.ids, "abbr_"+sanitizeID(a.Code))
		out.sets = append(out.sets, []string{strings.ToLower(a.Code), a.Full})
	}

	return out
}

// sanitizeID converte texto em ID válido de sinônimo
func sanitizeID(s string) string {
	s = nonIDChars.ReplaceAllString(utils.FoldAccents(s), "_")
	return strings.Trim(s, "_")
}
