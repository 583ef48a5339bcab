package quickserve

import (
	"net/http"
	"strconv"
)

// ParseID parses a path parameter as a base-10 integer. Anything that is not
// entirely an integer, including values that overflow int, is rejected with a
// 400 Error.
func ParseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, WrapError(http.StatusBadRequest, MsgInvalidID, err)
	}
	return id, nil
}
