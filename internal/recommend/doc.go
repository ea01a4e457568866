// Package recommend ranqueia conteúdos candidatos para descoberta.
//
// Dois recomendadores:
//
//   - Personalized: afinidade com o perfil do usuário (especialidade, formato, nível)
//     mais sinais de qualidade e novidade.
//   - TrendingRanker: engajamento, volume de buscas correlacionado, recência e velocidade.
//
// Os recomendadores são funções puras sobre os candidatos informados. Buscar os
// candidatos e cachear resultados é responsabilidade da camada de serviço.
package recommend
