package redis

var EscapeGlob = escapeGlob
