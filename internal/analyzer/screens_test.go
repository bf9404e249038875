package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elev8tion/phoenix/internal/source"
)

func TestExtractScreens_ScaffoldFeaturesAndProviders(t *testing.T) {
	files := []source.SourceFile{widgetFile("lib/screens/home_screen.dart", `
import 'package:flutter_riverpod/flutter_riverpod.dart';

class HomeScreen extends ConsumerWidget {
  const HomeScreen({super.key});

  @override
  Widget build(BuildContext context, WidgetRef ref) {
    final items = ref.watch(itemsProvider);
    ref.read(itemsProvider);
    final auth = Provider.of<AuthService>(context);
    return Scaffold(
      appBar: AppBar(title: const Text('Home')),
      drawer: const Drawer(),
      floatingActionButton: FloatingActionButton(onPressed: () {}),
      body: ListView(
        children: const [
          ItemCard(),
          ItemCard(),
        ],
      ),
    );
  }
}
`)}

	screens := New().ExtractScreens(files)
	require.Len(t, screens, 1)

	s := screens[0]
	assert.Equal(t, "HomeScreen", s.Name)
	assert.Equal(t, KindStateless, s.Kind)
	assert.True(t, s.Scaffold.HasAppBar)
	assert.True(t, s.Scaffold.HasDrawer)
	assert.True(t, s.Scaffold.HasFab)
	assert.False(t, s.Scaffold.HasBottomNav)

	// Deduplicated provider bindings from three distinct call sites.
	assert.Equal(t, []string{"AuthService", "itemsProvider"}, s.BoundProviders)

	assert.Equal(t, []string{"ItemCard"}, s.ReferencedWidgets)
	assert.Equal(t, LayoutList, s.DominantLayout)
}

func TestExtractScreens_StatefulBodyInStateClass(t *testing.T) {
	files := []source.SourceFile{widgetFile("lib/screens/settings_screen.dart", `
class SettingsScreen extends StatefulWidget {
  const SettingsScreen({super.key});

  @override
  State<SettingsScreen> createState() => _SettingsScreenState();
}

class _SettingsScreenState extends State<SettingsScreen> {
  @override
  Widget build(BuildContext context) {
    return Scaffold(
      bottomNavigationBar: BottomNavigationBar(items: const []),
      body: Column(children: const []),
    );
  }
}
`)}

	screens := New().ExtractScreens(files)
	require.Len(t, screens, 1)

	s := screens[0]
	assert.Equal(t, "SettingsScreen", s.Name)
	assert.Equal(t, KindStateful, s.Kind)
	assert.True(t, s.Scaffold.HasBottomNav)
	assert.Equal(t, LayoutColumn, s.DominantLayout)
}

func TestExtractScreens_WidgetWithoutScaffoldIsNotAScreen(t *testing.T) {
	files := []source.SourceFile{widgetFile("lib/widgets/user_card.dart", `
class UserCard extends StatelessWidget {
  const UserCard({super.key});
  Widget build(BuildContext context) => const Text('user');
}
`)}

	assert.Empty(t, New().ExtractScreens(files))
}

func TestDominantLayout_PriorityOrder(t *testing.T) {
	// Grid beats list even when the list appears first in the body.
	body := "ListView(children: []) GridView.count(crossAxisCount: 2)"
	assert.Equal(t, LayoutGrid, dominantLayout(body))

	assert.Equal(t, LayoutStack, dominantLayout("Stack(children: []) Row() Column()"))
	assert.Equal(t, LayoutRow, dominantLayout("Row() Column()"))
	assert.Equal(t, LayoutCustom, dominantLayout("CustomPaint()"))
}

func TestInferRoute_RouteNameDeclaration(t *testing.T) {
	files := []source.SourceFile{widgetFile("lib/screens/profile_screen.dart", `
class ProfileScreen extends StatelessWidget {
  static const String routeName = '/profile';
  const ProfileScreen({super.key});
  Widget build(BuildContext context) => Scaffold(body: Container());
}
`)}

	screens := New().ExtractScreens(files)
	require.Len(t, screens, 1)
	assert.Equal(t, "/profile", screens[0].Route)
}

func TestInferRoute_RouteTableAcrossFiles(t *testing.T) {
	files := []source.SourceFile{
		widgetFile("lib/screens/cart_screen.dart", `
class CartScreen extends StatelessWidget {
  const CartScreen({super.key});
  Widget build(BuildContext context) => Scaffold(body: Container());
}
`),
		widgetFile("lib/router.dart", `
final routes = {
  '/cart': (context) => const CartScreen(),
};
`),
	}

	screens := New().ExtractScreens(files)
	require.Len(t, screens, 1)
	assert.Equal(t, "/cart", screens[0].Route)
}

func TestInferRoute_KebabFallback(t *testing.T) {
	files := []source.SourceFile{widgetFile("lib/screens/order_history_screen.dart", `
class OrderHistoryScreen extends StatelessWidget {
  const OrderHistoryScreen({super.key});
  Widget build(BuildContext context) => Scaffold(body: Container());
}
`)}

	screens := New().ExtractScreens(files)
	require.Len(t, screens, 1)
	assert.Equal(t, "/order-history", screens[0].Route)
}

func TestKebabRouteName(t *testing.T) {
	assert.Equal(t, "order-history", kebabRouteName("OrderHistoryScreen"))
	assert.Equal(t, "login", kebabRouteName("LoginPage"))
	assert.Equal(t, "home", kebabRouteName("Screen"))
}
