// Package control
// Author: momentics <momentics@gmail.com>
//
// Observability plane for staticbuf: a metrics registry with bounded
// snapshot history and a debug probe reflector. Nothing here sits on the
// pool hot path; collection is pull-based and allocation here never touches
// the pool's static storage.
package control
