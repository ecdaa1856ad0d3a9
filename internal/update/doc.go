// Package update synchronizes OpenAPI specification and fixture documents from
// a source repository checkout into a target repository checkout.
//
// It offers CommandBuilder for the Cobra command and Service for orchestrating
// the run: precondition checks, pulling the target, copying each YAML document
// and rewriting it as deterministic JSON, committing fixture and specification
// groups separately, and pushing unless dry-run is requested.
package update
