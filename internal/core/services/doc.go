// Package services carries the core logic behind the driving ports.
// Each service orchestrates driven ports and holds no state of its own
// beyond the dependencies it was constructed with.
//
// The three services share one store: IndexerService writes articles,
// SearchService ranks them, ArticleService reads them back.
package services
