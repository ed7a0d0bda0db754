package netutil

import (
	"context"
	"net"

	"github.com/juju/errors"
	"github.com/juju/testing"
	jc "github.com/juju/testing/checkers"
	"go.uber.org/mock/gomock"
	gc "gopkg.in/check.v1"
)

type resolverSuite struct {
	testing.IsolationSuite

	resolver *MockResolver
}

var _ = gc.Suite(&resolverSuite{})

func (s *resolverSuite) setupMocks(c *gc.C) *gomock.Controller {
	ctrl := gomock.NewController(c)
	s.resolver = NewMockResolver(ctrl)
	return ctrl
}

func (s *resolverSuite) TestIsInvalidIP(c *gc.C) {
	cases := map[string]bool{
		"999.1.1.1":                  true,
		"1.1.1.256":                  true,
		"266.255.9.10":               true,
		"1.2.3.99999999999999999999": true,
		"127.0.0.1":                  false,
		"0.0.0.0":                    false,
		"255.255.255.255":            false,
		"a.999.1.1":                  false,
		"1..1.1":                     false,
		"1.2.3":                      false,
		"scanme.nmap.org":            false,
		"localhost":                  false,
		"":                           false,
	}
	for target, want := range cases {
		c.Logf("target %q", target)
		c.Check(IsInvalidIP(target), gc.Equals, want)
	}
}

func (s *resolverSuite) TestResolveInvalidIPSkipsLookup(c *gc.C) {
	defer s.setupMocks(c).Finish()

	_, err := Resolve(context.Background(), s.resolver, "999.1.1.1")
	c.Check(errors.Is(err, ErrInvalidIPAddress), jc.IsTrue)
}

func (s *resolverSuite) TestResolveUnknownHost(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.resolver.EXPECT().LookupIP(gomock.Any(), "ip4", "no-such-host.invalid").
		Return(nil, &net.DNSError{Err: "no such host", Name: "no-such-host.invalid", IsNotFound: true})

	_, err := Resolve(context.Background(), s.resolver, "no-such-host.invalid")
	c.Check(errors.Is(err, ErrInvalidHostname), jc.IsTrue)
	c.Check(err, gc.ErrorMatches, `resolving "no-such-host.invalid": .*: invalid hostname`)
}

func (s *resolverSuite) TestResolveNoIPv4(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.resolver.EXPECT().LookupIP(gomock.Any(), "ip4", "v6only.example").
		Return([]net.IP{net.ParseIP("2001:db8::1")}, nil)

	_, err := Resolve(context.Background(), s.resolver, "v6only.example")
	c.Check(errors.Is(err, ErrInvalidHostname), jc.IsTrue)
}

func (s *resolverSuite) TestResolveWithReverseName(c *gc.C) {
	defer s.setupMocks(c).Finish()

	gomock.InOrder(
		s.resolver.EXPECT().LookupIP(gomock.Any(), "ip4", "scanme.nmap.org").
			Return([]net.IP{net.ParseIP("45.33.32.156")}, nil),
		s.resolver.EXPECT().LookupAddr(gomock.Any(), "45.33.32.156").
			Return([]string{"scanme.nmap.org."}, nil),
	)

	addr, err := Resolve(context.Background(), s.resolver, "scanme.nmap.org")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(addr, jc.DeepEquals, Address{
		Target:   "scanme.nmap.org",
		IP:       "45.33.32.156",
		Hostname: "scanme.nmap.org",
	})
}

func (s *resolverSuite) TestResolveReverseFailureFallsBackToIP(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.resolver.EXPECT().LookupIP(gomock.Any(), "ip4", "209.216.230.240").
		Return([]net.IP{net.ParseIP("209.216.230.240")}, nil)
	s.resolver.EXPECT().LookupAddr(gomock.Any(), "209.216.230.240").
		Return(nil, &net.DNSError{Err: "no such host", Name: "209.216.230.240", IsNotFound: true})

	addr, err := Resolve(context.Background(), s.resolver, "209.216.230.240")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(addr.IP, gc.Equals, "209.216.230.240")
	c.Check(addr.Hostname, gc.Equals, "209.216.230.240")
}

func (s *resolverSuite) TestReverseNameSkipsEmptyNames(c *gc.C) {
	defer s.setupMocks(c).Finish()

	s.resolver.EXPECT().LookupAddr(gomock.Any(), "10.0.0.1").Return([]string{"."}, nil)

	c.Check(ReverseName(context.Background(), s.resolver, "10.0.0.1"), gc.Equals, "10.0.0.1")
}

func (s *resolverSuite) TestResolveLiteralIPv4WithDefaultResolver(c *gc.C) {
	ip, err := ResolveTargetToIPv4(context.Background(), net.DefaultResolver, "1.2.3.4")
	c.Assert(err, jc.ErrorIsNil)
	c.Check(ip, gc.Equals, "1.2.3.4")
}
