// Package git provides the small Git CLI surface soap needs: locating the
// root of the enclosing repository, which anchors configuration lookup and
// the chdir behaviour of aliases.
package git
